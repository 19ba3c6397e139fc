package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/PluginKit_Go/internal/domain"
	"github.com/osse101/PluginKit_Go/internal/itemstr"
)

// MaxDescriptorLength bounds descriptors accepted over HTTP
const MaxDescriptorLength = 512

// ItemService is the part of the descriptor engine the item routes need
type ItemService interface {
	ParseDescriptor(s string) (itemstr.Descriptor, bool)
	Parse(s string) (*domain.ItemStack, bool)
	CompareIgnoringName(id, variant, amount int, s string) bool
	CompareItem(item *domain.ItemStack, s string) bool
}

// ParseItemQuery is the validated form of the parse query string
type ParseItemQuery struct {
	Descriptor string `validate:"required,descriptor,max=512"`
}

// ParseItemResponse carries both the grammar reading and one built stack.
// Ranges in the descriptor are drawn again on every request.
type ParseItemResponse struct {
	Descriptor itemstr.Descriptor `json:"descriptor"`
	Item       *domain.ItemStack  `json:"item"`
}

// CompareItemRequest describes a stack to test against a descriptor
type CompareItemRequest struct {
	Descriptor  string `json:"descriptor" validate:"required,descriptor,max=512"`
	MaterialID  int    `json:"material_id" validate:"gte=0"`
	Variant     int    `json:"variant" validate:"gte=0"`
	Amount      int    `json:"amount" validate:"gte=0"`
	DisplayName string `json:"display_name,omitempty" validate:"max=256"`
	IgnoreName  bool   `json:"ignore_name"`
}

// CompareItemResponse reports whether the stack satisfied the descriptor
type CompareItemResponse struct {
	Matches bool `json:"matches"`
}

// HandleParseItem parses ?descriptor= and returns the descriptor and a stack
func HandleParseItem(svc ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetQueryParam(r, w, "descriptor")
		if !ok {
			return
		}
		q := ParseItemQuery{Descriptor: raw}
		if err := GetValidator().ValidateStruct(q); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidRequestSummary,
				Fields: FormatValidationError(err),
			})
			return
		}

		d, ok := svc.ParseDescriptor(raw)
		if !ok {
			logFromRequest(r).Debug(LogMsgParseRejected, "descriptor", raw)
			respondServiceError(w, r, fmt.Errorf("%w: %q", domain.ErrInvalidDescriptor, raw))
			return
		}
		if !d.Resolved() {
			respondServiceError(w, r, fmt.Errorf("%w: id %d", domain.ErrMaterialNotFound, d.MaterialID))
			return
		}

		item, ok := svc.Parse(raw)
		if !ok {
			respondServiceError(w, r, fmt.Errorf("%w: %q", domain.ErrInvalidDescriptor, raw))
			return
		}
		respondJSON(w, http.StatusOK, ParseItemResponse{Descriptor: d, Item: item})
	}
}

// HandleCompareItem checks a described stack against a descriptor. The name
// is compared too unless ignore_name is set.
func HandleCompareItem(svc ItemService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CompareItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Compare item"); err != nil {
			return
		}

		var matches bool
		if req.IgnoreName {
			matches = svc.CompareIgnoringName(req.MaterialID, req.Variant, req.Amount, req.Descriptor)
		} else {
			item := &domain.ItemStack{
				Material:    domain.Material{ID: req.MaterialID},
				Variant:     req.Variant,
				Amount:      req.Amount,
				DisplayName: req.DisplayName,
			}
			matches = svc.CompareItem(item, req.Descriptor)
		}
		respondJSON(w, http.StatusOK, CompareItemResponse{Matches: matches})
	}
}
