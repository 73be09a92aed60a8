package errors

import "testing"

func TestValidatePokemonName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "pikachu", false},
		{"mixed case", "Pikachu", false},
		{"hyphenated", "mr-mime", false},
		{"with space and dot", "Mr. Mime", false},
		{"apostrophe", "farfetch'd", false},
		{"gender symbol", "Nidoran♀", false},
		{"accented", "Flabébé", false},
		{"dex number", "25", false},
		{"padded", "  eevee  ", false},
		{"empty", "", true},
		{"blank", "   ", true},
		{"slash", "pokemon/1", true},
		{"backslash", `a\b`, true},
		{"traversal", "..", true},
		{"query", "pikachu?x=1", true},
		{"control char", "pika\nchu", true},
		{"null byte", "pika\x00chu", true},
		{"too long", string(make([]byte, 65)), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePokemonName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePokemonName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidName) {
				t.Errorf("error code = %v, want %v", GetCode(err), ErrCodeInvalidName)
			}
		})
	}
}

func TestValidatePokemonNameMaxLength(t *testing.T) {
	name := ""
	for len(name) < maxNameLength {
		name += "a"
	}
	if err := ValidatePokemonName(name); err != nil {
		t.Errorf("name of exactly %d chars should be valid: %v", maxNameLength, err)
	}
}

func TestValidateMoveName(t *testing.T) {
	if err := ValidateMoveName("thunderbolt"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := ValidateMoveName("")
	if err == nil {
		t.Fatal("expected error for empty move name")
	}
	if UserMessage(err) != "move name cannot be empty" {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestValidateTypeName(t *testing.T) {
	for _, name := range TypeNames {
		if err := ValidateTypeName(name); err != nil {
			t.Errorf("ValidateTypeName(%q) = %v", name, err)
		}
	}
	if err := ValidateTypeName("Fire"); err != nil {
		t.Errorf("type names should be case-insensitive: %v", err)
	}
	for _, bad := range []string{"", "sound", "fire/water"} {
		err := ValidateTypeName(bad)
		if !Is(err, ErrCodeInvalidType) {
			t.Errorf("ValidateTypeName(%q) = %v, want INVALID_TYPE", bad, err)
		}
	}
	if len(TypeNames) != 18 {
		t.Errorf("len(TypeNames) = %d, want 18", len(TypeNames))
	}
}

func TestValidateFormat(t *testing.T) {
	if err := ValidateFormat("json", "text", "json", "yaml"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	err := ValidateFormat("xml", "text", "json", "yaml")
	if !Is(err, ErrCodeInvalidFormat) {
		t.Fatalf("err = %v, want INVALID_FORMAT", err)
	}
	if UserMessage(err) != `unsupported format "xml" (want one of text, json, yaml)` {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://pokeapi.co/api/v2", false},
		{"http://localhost:8080", false},
		{"", true},
		{"ftp://example.com", true},
		{"pokeapi.co", true},
	}
	for _, tt := range tests {
		if err := ValidateURL(tt.url); (err != nil) != tt.wantErr {
			t.Errorf("ValidateURL(%q) error = %v, wantErr %v", tt.url, err, tt.wantErr)
		}
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeInvalidInput,
		ErrCodeInvalidName,
		ErrCodeInvalidType,
		ErrCodeInvalidFormat,
		ErrCodeNotFound,
		ErrCodePokemonNotFound,
		ErrCodeMoveNotFound,
		ErrCodeNetwork,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
