package validator_test

import (
	"strings"
	"testing"

	"github.com/singhtechie24/Indiana-Hotels-Final/shared/validator"
)

// Test structs for validation
type ValidTestStruct struct {
	Name     string `validate:"required" json:"name"`
	Email    string `validate:"required,email" json:"email"`
	Capacity int    `validate:"gte=0,lte=20" json:"capacity"`
	Category string `validate:"oneof=guest staff admin" json:"category"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        *ValidTestStruct
		expectError bool
	}{
		{
			name: "valid struct",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Capacity: 4,
				Category: "guest",
			},
			expectError: false,
		},
		{
			name: "missing required field",
			data: &ValidTestStruct{
				Email:    "john@example.com",
				Capacity: 4,
				Category: "guest",
			},
			expectError: true,
		},
		{
			name: "invalid email",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "invalid-email",
				Capacity: 4,
				Category: "guest",
			},
			expectError: true,
		},
		{
			name: "capacity out of range",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Capacity: 150,
				Category: "guest",
			},
			expectError: true,
		},
		{
			name: "invalid category",
			data: &ValidTestStruct{
				Name:     "John Doe",
				Email:    "john@example.com",
				Capacity: 4,
				Category: "invalid",
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
			field:       "test@example.com",
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
			name:        "valid number in range",
			field:       25,
			tag:         "gte=0,lte=100",
			expectError: false,
		},
		{
			name:        "number out of range",
			field:       150,
			tag:         "gte=0,lte=100",
			expectError: true,
		},
		{
			name:        "valid oneof",
			field:       "staff",
			tag:         "oneof=guest staff admin",
			expectError: false,
		},
		{
			name:        "invalid oneof",
			field:       "invalid",
			tag:         "oneof=guest staff admin",
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

func TestDateOnlyValidation(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		expectError bool
	}{
		{
			name:        "valid calendar date",
			field:       "2026-06-01",
			expectError: false,
		},
		{
			name:        "date with time component",
			field:       "2026-06-01T14:00:00Z",
			expectError: true,
		},
		{
			name:        "month out of range",
			field:       "2026-13-01",
			expectError: true,
		},
		{
			name:        "not a date",
			field:       "tomorrow",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, "dateonly")

			if tt.expectError && err == nil {
				t.Error("expected validation error, got nil")
			}

			if !tt.expectError && err != nil {
				t.Errorf("expected no validation error, got: %v", err)
			}
		})
	}
}

func TestMimetypesValidation(t *testing.T) {
	tests := []struct {
		name        string
		field       string
		tag         string
		expectError bool
	}{
		{
			name:        "allowed png data uri",
			field:       "data:image/png;base64,iVBORw0KGgo=",
			tag:         "mimetypes=image/png image/jpeg",
			expectError: false,
		},
		{
			name:        "disallowed gif data uri",
			field:       "data:image/gif;base64,R0lGODlh=",
			tag:         "mimetypes=image/png image/jpeg",
			expectError: true,
		},
		{
			name:        "not a data uri",
			field:       "just-a-string",
			tag:         "mimetypes=image/png",
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

func TestMaxFileSizeValidation(t *testing.T) {
	// String payloads are measured by byte length against the MB parameter.
	small := strings.Repeat("a", 1024)

	if err := validator.ValidateVar(small, "maxfilesize=1"); err != nil {
		t.Errorf("expected 1KB payload to pass a 1MB limit, got: %v", err)
	}

	large := strings.Repeat("a", 2*1024*1024)

	if err := validator.ValidateVar(large, "maxfilesize=1"); err == nil {
		t.Error("expected 2MB payload to fail a 1MB limit")
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
			jsonBody:    `{"name":"John Doe","email":"john@example.com","capacity":4,"category":"guest"}`,
			expectError: false,
		},
		{
			name:        "invalid JSON",
			jsonBody:    `{"name":"John Doe","email":"invalid-email","capacity":4,"category":"guest"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"John Doe","email":}`,
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
			var data ValidTestStruct
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
	data := &ValidTestStruct{}
	err := validator.ValidateStruct(data)

	if err == nil {
		t.Fatal("expected validation error for empty struct")
	}

	errorMsg := err.Error()

	if !strings.Contains(errorMsg, "required") || errorMsg == "" {
		t.Errorf("expected descriptive error message containing 'required', got: %s", errorMsg)
	}
}
