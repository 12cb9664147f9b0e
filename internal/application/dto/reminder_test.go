package dto_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locationreminder/internal/application/dto"
	"locationreminder/internal/pkg/validation"
	"locationreminder/internal/testutil"
)

func TestNewReminderDataItemAssignsUniqueIDs(t *testing.T) {
	a := dto.NewReminderDataItem(nil, nil, nil, nil, nil)
	b := dto.NewReminderDataItem(nil, nil, nil, nil, nil)

	_, err := uuid.Parse(a.ID)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestEntityConversion(t *testing.T) {
	reminder := testutil.ReminderAt("r1", 35.6, 139.7)

	item := dto.FromEntity(reminder)

	assert.Equal(t, "r1", item.ID)
	assert.Equal(t, reminder, item.ToEntity())
}

func TestFromEntitiesNeverNil(t *testing.T) {
	items := dto.FromEntities(nil)

	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSaveReminderRequestToDataItem(t *testing.T) {
	t.Run("keeps a supplied id", func(t *testing.T) {
		item := dto.SaveReminderRequest{ID: "given", Title: testutil.Ptr("t")}.ToDataItem()

		assert.Equal(t, "given", item.ID)
		assert.Equal(t, "t", *item.Title)
	})

	t.Run("generates an id when empty", func(t *testing.T) {
		item := dto.SaveReminderRequest{}.ToDataItem()

		assert.NotEmpty(t, item.ID)
	})
}

func TestSaveReminderRequestValidation(t *testing.T) {
	tests := []struct {
		name    string
		req     dto.SaveReminderRequest
		wantErr bool
	}{
		{name: "empty request passes", req: dto.SaveReminderRequest{}},
		{name: "valid coordinates", req: dto.SaveReminderRequest{Latitude: testutil.Ptr(35.0), Longitude: testutil.Ptr(139.0)}},
		{name: "latitude out of range", req: dto.SaveReminderRequest{Latitude: testutil.Ptr(120.0)}, wantErr: true},
		{name: "longitude out of range", req: dto.SaveReminderRequest{Longitude: testutil.Ptr(200.0)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.ValidateStruct(tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
