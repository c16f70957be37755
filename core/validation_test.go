package core

import (
	"errors"
	"testing"
)

func TestValidateVocabularyEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []string
		wantErr error
	}{
		{
			name:    "valid entries",
			entries: []string{"machine learning", "bert", "zero-shot"},
			wantErr: nil,
		},
		{
			name:    "empty list",
			entries: nil,
			wantErr: nil,
		},
		{
			name:    "empty entry",
			entries: []string{"bert", ""},
			wantErr: ErrEmptyEntry,
		},
		{
			name:    "uppercase entry",
			entries: []string{"BERT"},
			wantErr: ErrNotLowercase,
		},
		{
			name:    "padded entry",
			entries: []string{" bert"},
			wantErr: ErrUntrimmedEntry,
		},
		{
			name:    "duplicate entry",
			entries: []string{"gpt", "bert", "gpt"},
			wantErr: ErrDuplicateEntry,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVocabularyEntries(tt.entries)

			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateVocabularyEntries() unexpected error = %v", err)
				}
				return
			}

			if err == nil {
				t.Fatalf("ValidateVocabularyEntries() expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateVocabularyEntries() error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, ErrInvalidVocabulary) {
				t.Errorf("ValidateVocabularyEntries() error should wrap ErrInvalidVocabulary")
			}
		})
	}
}

func TestValidateRecencyWindow(t *testing.T) {
	tests := []struct {
		name    string
		days    int
		wantErr bool
	}{
		{name: "disabled", days: 0},
		{name: "one week", days: 7},
		{name: "negative", days: -1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecencyWindow(tt.days)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecencyWindow(%d) error = %v, wantErr %v", tt.days, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidRecencyWindow) {
				t.Errorf("ValidateRecencyWindow(%d) error = %v, want ErrInvalidRecencyWindow", tt.days, err)
			}
		})
	}
}
