package service

import (
	"locationreminder/internal/domain/constant"
	"locationreminder/internal/pkg/observable"
)

// BaseState is the observable output shared by the reminder workflows.
// A presentation layer watches these values; the workflows only write them.
type BaseState struct {
	ShowLoading       observable.Value[bool]
	ShowErrorMessage  observable.Value[string]
	ShowSnackBar      observable.Value[string]
	ShowSnackBarInt   observable.Value[constant.ErrorReason]
	ShowToast         observable.Value[string]
	ShowNoData        observable.Value[bool]
	NavigationCommand observable.Value[constant.NavigationCommand]
}
