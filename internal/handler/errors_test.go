package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/PluginKit_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"nil", nil, http.StatusInternalServerError, ErrMsgUnknownError},
		{"invalid descriptor", fmt.Errorf("%w: x", domain.ErrInvalidDescriptor), http.StatusBadRequest, ErrMsgInvalidDescriptorError},
		{"material not found", domain.ErrMaterialNotFound, http.StatusUnprocessableEntity, ErrMsgUnknownMaterialError},
		{"checker disabled", domain.ErrUpdateCheckDisabled, http.StatusConflict, ErrMsgUpdateCheckDisabledError},
		{"check failed", fmt.Errorf("%w: timeout", domain.ErrUpdateCheckFailed), http.StatusBadGateway, ErrMsgUpdateCheckFailedError},
		{"other", assert.AnError, http.StatusInternalServerError, ErrMsgGenericServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}
