package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"locationreminder/internal/application/dto"
	"locationreminder/internal/application/service"
	"locationreminder/internal/domain/repository"
	"locationreminder/internal/pkg/logger"
)

// ReminderHandler serves the reminder endpoints.
type ReminderHandler struct {
	dataSource repository.ReminderDataSource
	log        logger.Logger
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(dataSource repository.ReminderDataSource, log logger.Logger) *ReminderHandler {
	return &ReminderHandler{
		dataSource: dataSource,
		log:        log,
	}
}

// ListReminders handles GET /api/v1/reminders.
func (h *ReminderHandler) ListReminders(c echo.Context) error {
	svc := service.NewRemindersListService(h.dataSource, h.log)
	svc.LoadReminders(c.Request().Context())

	if msg, failed := svc.ShowSnackBar.Get(); failed {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msg})
	}
	list, ok := svc.RemindersList.Get()
	if !ok {
		list = []dto.ReminderDataItem{}
	}
	return c.JSON(http.StatusOK, dto.ReminderListResponse{
		Reminders: list,
		NoData:    svc.ShowNoData.Value(),
	})
}

// GetReminder handles GET /api/v1/reminders/:id.
func (h *ReminderHandler) GetReminder(c echo.Context) error {
	res := h.dataSource.GetReminder(c.Request().Context(), c.Param("id"))
	if res.IsError() {
		return c.JSON(resultStatus(res), dto.ErrorResponse{Error: res.Message()})
	}
	return c.JSON(http.StatusOK, dto.FromEntity(res.Data()))
}

// SaveReminder handles POST /api/v1/reminders. Each request runs its own
// save workflow, cleared once the request is done.
func (h *ReminderHandler) SaveReminder(c echo.Context) error {
	var req dto.SaveReminderRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	svc := service.NewSaveReminderService(h.dataSource, h.log)
	defer svc.OnClear()

	item := req.ToDataItem()
	valid, err := svc.ValidateAndSaveReminder(c.Request().Context(), item)
	if !valid {
		reason := svc.ShowSnackBarInt.Value()
		return c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{
			Error:  reason.Message(),
			Reason: string(reason),
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: svc.ShowErrorMessage.Value()})
	}

	h.log.Debug(fmt.Sprintf("Reminder %s saved via API", item.ID))
	return c.JSON(http.StatusCreated, dto.SaveReminderResponse{
		Message:  svc.ShowToast.Value(),
		Reminder: *item,
	})
}

// DeleteAllReminders handles DELETE /api/v1/reminders.
func (h *ReminderHandler) DeleteAllReminders(c echo.Context) error {
	if err := h.dataSource.DeleteAllReminders(c.Request().Context()); err != nil {
		h.log.Error("Failed to delete all reminders", err)
		return c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
	h.log.Info("Deleted all reminders.")
	return c.NoContent(http.StatusNoContent)
}
