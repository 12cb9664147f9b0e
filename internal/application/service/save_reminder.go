package service

import (
	"context"
	"fmt"

	"locationreminder/internal/application/dto"
	"locationreminder/internal/domain/constant"
	"locationreminder/internal/domain/repository"
	"locationreminder/internal/pkg/logger"
	"locationreminder/internal/pkg/observable"
)

// PointOfInterest is a named place picked as a reminder location.
type PointOfInterest struct {
	PlaceID   string
	Name      string
	Latitude  float64
	Longitude float64
}

// SaveReminderService validates a candidate reminder and persists it.
// One instance serves one reminder creation session and is not meant to be
// shared between concurrent sessions.
type SaveReminderService struct {
	BaseState

	ReminderTitle               observable.Value[string]
	ReminderDescription         observable.Value[string]
	ReminderSelectedLocationStr observable.Value[string]
	SelectedPOI                 observable.Value[PointOfInterest]
	Latitude                    observable.Value[float64]
	Longitude                   observable.Value[float64]

	dataSource repository.ReminderDataSource
	log        logger.Logger
}

// NewSaveReminderService creates a save workflow over dataSource.
func NewSaveReminderService(dataSource repository.ReminderDataSource, log logger.Logger) *SaveReminderService {
	return &SaveReminderService{
		dataSource: dataSource,
		log:        log,
	}
}

// SelectLocation fills the location inputs from a picked point of interest.
func (s *SaveReminderService) SelectLocation(poi PointOfInterest) {
	s.SelectedPOI.Set(poi)
	s.ReminderSelectedLocationStr.Set(poi.Name)
	s.Latitude.Set(poi.Latitude)
	s.Longitude.Set(poi.Longitude)
}

// EnteredItem builds a candidate item from the current inputs.
func (s *SaveReminderService) EnteredItem() *dto.ReminderDataItem {
	return dto.NewReminderDataItem(
		optional(&s.ReminderTitle),
		optional(&s.ReminderDescription),
		optional(&s.ReminderSelectedLocationStr),
		optional(&s.Latitude),
		optional(&s.Longitude),
	)
}

// ValidateEnteredData reports whether item can be saved. A missing title is
// reported before a missing location.
func (s *SaveReminderService) ValidateEnteredData(item *dto.ReminderDataItem) bool {
	if isBlank(item.Title) {
		s.ShowSnackBarInt.Set(constant.ReasonMissingTitle)
		return false
	}
	if isBlank(item.Location) {
		s.ShowSnackBarInt.Set(constant.ReasonMissingLocation)
		return false
	}
	return true
}

// SaveReminder persists item. On failure the error is published on
// ShowErrorMessage and returned; inputs are left as they were.
func (s *SaveReminderService) SaveReminder(ctx context.Context, item *dto.ReminderDataItem) error {
	s.ShowLoading.Set(true)
	err := s.dataSource.SaveReminder(ctx, item.ToEntity())
	s.ShowLoading.Set(false)

	if err != nil {
		s.log.Error(fmt.Sprintf("Failed to save reminder %s", item.ID), err)
		s.ShowErrorMessage.Set(err.Error())
		return err
	}

	s.log.Info(fmt.Sprintf("Saved reminder %s", item.ID))
	s.ShowToast.Set(constant.ReminderSavedMessage)
	s.NavigationCommand.Set(constant.NavigateBack)
	return nil
}

// ValidateAndSaveReminder saves item only when it passes validation.
// It returns whether the item was valid and any save error.
func (s *SaveReminderService) ValidateAndSaveReminder(ctx context.Context, item *dto.ReminderDataItem) (bool, error) {
	if !s.ValidateEnteredData(item) {
		return false, nil
	}
	return true, s.SaveReminder(ctx, item)
}

// OnClear unsets every input so a later session starts empty.
func (s *SaveReminderService) OnClear() {
	s.ReminderTitle.Clear()
	s.ReminderDescription.Clear()
	s.ReminderSelectedLocationStr.Clear()
	s.SelectedPOI.Clear()
	s.Latitude.Clear()
	s.Longitude.Clear()
}

func isBlank(s *string) bool {
	return s == nil || *s == ""
}

func optional[T any](v *observable.Value[T]) *T {
	val, ok := v.Get()
	if !ok {
		return nil
	}
	return &val
}
