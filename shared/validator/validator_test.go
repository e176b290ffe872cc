package validator_test

import (
	"strings"
	"testing"

	"inn/shared/validator"
)

type roomRequest struct {
	RoomNumber    string  `validate:"required,max=20"                 json:"room_number"`
	RoomType      string  `validate:"required,oneof=single double suite" json:"room_type"`
	PricePerNight float64 `validate:"required,min=0"                  json:"price_per_night"`
	MaxGuests     int     `validate:"required,min=1"                  json:"max_guests"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *roomRequest
		expectError bool
	}{
		{
			name: "valid struct",
			data: &roomRequest{
				RoomNumber:    "101",
				RoomType:      "double",
				PricePerNight: 150,
				MaxGuests:     2,
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &roomRequest{
				RoomType:      "double",
				PricePerNight: 150,
				MaxGuests:     2,
			},
			expectError: true,
		},
		{
			name: "invalid room type",
			data: &roomRequest{
				RoomNumber:    "101",
				RoomType:      "penthouse",
				PricePerNight: 150,
				MaxGuests:     2,
			},
			expectError: true,
		},
		{
			name: "zero guests",
			data: &roomRequest{
				RoomNumber:    "101",
				RoomType:      "suite",
				PricePerNight: 150,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(tt.data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       interface{}
		tag         string
		expectError bool
	}{
		{
			name:        "valid required string",
			field:       "test",
			tag:         "required",
			expectError: false,
		},
		{
			name:        "empty required string",
			field:       "",
			tag:         "required",
			expectError: true,
		},
		{
			name:        "valid email",
			field:       "guest@example.com",
			tag:         "email",
			expectError: false,
		},
		{
			name:        "invalid email",
			field:       "invalid-email",
			tag:         "email",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "confirmed",
			tag:         "oneof=pending confirmed cancelled",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "rejected",
			tag:         "oneof=pending confirmed cancelled",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"room_number":"101","room_type":"double","price_per_night":150,"max_guests":2}`,
			expectError: false,
		},
		{
			name:        "invalid room type",
			jsonBody:    `{"room_number":"101","room_type":"cabin","price_per_night":150,"max_guests":2}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"room_number":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reader := strings.NewReader(tt.jsonBody)
			var data roomRequest
			err := validator.Validate(reader, &data)

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestValidationMessages(t *testing.T) {
	data := &roomRequest{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	if !strings.Contains(err.Error(), "required") {
		t.Errorf("expected descriptive error message containing 'required', got: %s", err.Error())
	}
}
