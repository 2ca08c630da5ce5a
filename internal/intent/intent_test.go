package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_Email(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare address", "john.doe@example.com", "john.doe@example.com"},
		{"embedded in sentence", "find info about jane_roe@mail.example.org please", "jane_roe@mail.example.org"},
		{"uppercase normalized", "Who is JOHN.DOE@EXAMPLE.COM", "john.doe@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.input)
			assert.True(t, got.HasIntent)
			assert.Equal(t, TypeEmail, got.Type)
			assert.Equal(t, tt.want, got.Query)
		})
	}
}

func TestExtract_EmailWinsOverUsername(t *testing.T) {
	// '@' appears in both rules; email has priority
	got := NewExtractor().Extract("look up john@example.com")
	assert.Equal(t, TypeEmail, got.Type)
}

func TestExtract_Phone(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain digits", "5551234567", "5551234567"},
		{"formatted", "call +1 (555) 123-4567", "15551234567"},
		{"dashes", "555-123-4567", "5551234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.input)
			assert.True(t, got.HasIntent)
			assert.Equal(t, TypePhone, got.Type)
			assert.Equal(t, tt.want, got.Query)
		})
	}
}

func TestExtract_ShortDigitRunIsNotPhone(t *testing.T) {
	got := NewExtractor().Extract("123456")
	assert.NotEqual(t, TypePhone, got.Type)
}

func TestExtract_Username(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"at handle", "find @johndoe", "johndoe"},
		{"username keyword", "search username johndoe99", "johndoe99"},
		{"handle keyword with colon", "handle: cool_user", "cool_user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.input)
			assert.True(t, got.HasIntent)
			assert.Equal(t, TypeUsername, got.Type)
			assert.Equal(t, tt.want, got.Query)
		})
	}
}

func TestExtract_UsernameKeywordWithoutToken(t *testing.T) {
	got := NewExtractor().Extract("what is a username")
	assert.True(t, got.HasIntent)
	assert.Empty(t, got.Query)
	assert.Empty(t, got.Type)
}

func TestExtract_Name(t *testing.T) {
	e := NewExtractor()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"who is", "who is John Doe", "John Doe"},
		{"search for", "search for Jane Roe", "Jane Roe"},
		{"find", "find Alice Smith", "Alice Smith"},
		{"bare capitalized pair", "John Doe", "John Doe"},
		{"turkish verb", "bul Mehmet Yilmaz", "Mehmet Yilmaz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Extract(tt.input)
			require.True(t, got.HasIntent, "input: %q", tt.input)
			assert.Equal(t, TypeName, got.Type)
			assert.Equal(t, tt.want, got.Query)
		})
	}
}

func TestExtract_IntentWithoutQuery(t *testing.T) {
	// Keywords present but nothing extractable: caller must ask for
	// clarification, not silently fail.
	got := NewExtractor().Extract("search")
	assert.True(t, got.HasIntent)
	assert.Empty(t, got.Query)
	assert.Empty(t, got.Type)
}

func TestExtract_NoIntent(t *testing.T) {
	e := NewExtractor()

	for _, input := range []string{"", "   ", "hello there", "the weather today"} {
		got := e.Extract(input)
		assert.False(t, got.HasIntent, "input: %q", input)
		assert.Empty(t, got.Query)
		assert.Empty(t, got.Type)
	}
}

func TestExtract_CacheReturnsSameResult(t *testing.T) {
	e := NewExtractor()
	first := e.Extract("who is John Doe")
	second := e.Extract("who is John Doe")
	assert.Equal(t, first, second)
}

func TestParseType(t *testing.T) {
	for _, s := range []string{"name", "phone", "email", "username", " EMAIL "} {
		_, err := ParseType(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseType("address")
	assert.Error(t, err)
}
