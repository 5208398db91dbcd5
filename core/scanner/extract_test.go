package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractValue(t *testing.T) {
	body := `
  ami           = "ami-0c55b159cbfafe1f0"
  instance_type = "t3.large"
  count = 3
  account_id = "1234"
  multi_az = true
  name = "  padded  "
  empty = ""
`
	tests := []struct {
		key   string
		want  string
		found bool
	}{
		{"ami", "ami-0c55b159cbfafe1f0", true},
		{"instance_type", "t3.large", true},
		{"count", "3", true},
		{"multi_az", "true", true},
		{"name", "padded", true},
		{"empty", "", true},
		{"missing", "", false},
		{"id", "", false}, // must not match inside account_id
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := ExtractValue(body, tt.key)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractValueFirstBindingWins(t *testing.T) {
	body := "engine = \"mysql\"\nengine = \"postgres\"\n"
	got, ok := ExtractValue(body, "engine")
	require.True(t, ok)
	assert.Equal(t, "mysql", got)
}

func TestExtractValueDoesNotMatchLongerKey(t *testing.T) {
	body := "account = 5\n"
	_, ok := ExtractValue(body, "count")
	assert.False(t, ok)
}

func TestExtractValueUnquotedTrailingComment(t *testing.T) {
	body := "allocated_storage = 20 # GiB\n"
	assert.Equal(t, 20, IntValue(body, "allocated_storage", 0))
}

func TestExtractBlock(t *testing.T) {
	body := `
  instance_type = "t3.micro"
  root_block_device {
    volume_size = 50
    volume_type = "gp3"
  }
`
	inner, ok := ExtractBlock(body, "root_block_device")
	require.True(t, ok)
	assert.Contains(t, inner, "volume_size = 50")
	assert.Equal(t, 50, IntValue(inner, "volume_size", 8))
	assert.Equal(t, "gp3", StringValue(inner, "volume_type", "gp2"))

	_, ok = ExtractBlock(body, "ebs_block_device")
	assert.False(t, ok)
}

func TestExtractBlockStopsAtFirstBrace(t *testing.T) {
	body := "outer {\n  a = 1\n  inner {\n    b = 2\n  }\n  c = 3\n}\n"
	inner, ok := ExtractBlock(body, "outer")
	require.True(t, ok)
	assert.Contains(t, inner, "a = 1")
	assert.NotContains(t, inner, "c = 3")
}

func TestIntValueDefaults(t *testing.T) {
	assert.Equal(t, 7, IntValue("", "count", 7))
	assert.Equal(t, 7, IntValue("count = var.n\n", "count", 7))
	assert.Equal(t, 7, IntValue("count = \"\"\n", "count", 7))
	assert.Equal(t, -2, IntValue("count = -2\n", "count", 7))
}

func TestOptionalInt(t *testing.T) {
	assert.Nil(t, OptionalInt("", "read_capacity"))
	assert.Nil(t, OptionalInt("read_capacity = var.rcu\n", "read_capacity"))

	got := OptionalInt("read_capacity = 5\n", "read_capacity")
	require.NotNil(t, got)
	assert.Equal(t, 5, *got)
}

func TestBoolValue(t *testing.T) {
	assert.True(t, BoolValue("multi_az = true\n", "multi_az"))
	assert.True(t, BoolValue("multi_az = \"true\"\n", "multi_az"))
	assert.False(t, BoolValue("multi_az = false\n", "multi_az"))
	assert.False(t, BoolValue("multi_az = TRUE\n", "multi_az"))
	assert.False(t, BoolValue("", "multi_az"))
}

func TestStringValueEmptyTakesDefault(t *testing.T) {
	assert.Equal(t, "gp2", StringValue("storage_type = \"\"\n", "storage_type", "gp2"))
	assert.Equal(t, "io1", StringValue("storage_type = \"io1\"\n", "storage_type", "gp2"))
}
