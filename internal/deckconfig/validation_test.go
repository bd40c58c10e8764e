package deckconfig

import (
	"strings"
	"testing"
)

func TestValidateDocument(t *testing.T) {
	valid := func() *Document {
		return &Document{
			FolderUpImg: "up.png",
			FolderImg:   "folder.png",
			Page:        &PageNode{Name: "main"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(doc *Document)
		wantErr string
	}{
		{
			name:   "valid document",
			mutate: func(doc *Document) {},
		},
		{
			name:    "missing page",
			mutate:  func(doc *Document) { doc.Page = nil },
			wantErr: "page",
		},
		{
			name:    "nameless root page",
			mutate:  func(doc *Document) { doc.Page.Name = "" },
			wantErr: "name",
		},
		{
			name:    "missing folder_up_img",
			mutate:  func(doc *Document) { doc.FolderUpImg = "" },
			wantErr: "folder_up_img",
		},
		{
			name:    "missing folder_img",
			mutate:  func(doc *Document) { doc.FolderImg = "" },
			wantErr: "folder_img",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := valid()
			tt.mutate(doc)
			err := ValidateDocument(doc)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidateDocument() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateDocument() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidationErrorFormat(t *testing.T) {
	err := NewValidationError("page.keys[3]", "bad key %q", "x")
	if got := err.Error(); !strings.Contains(got, "page.keys[3]") || !strings.Contains(got, `"x"`) {
		t.Errorf("Error() = %q, want path and message", got)
	}

	bare := NewValidationError("", "top-level problem")
	if strings.Contains(bare.Error(), "at ") {
		t.Errorf("Error() without path = %q, should omit location", bare.Error())
	}
}
