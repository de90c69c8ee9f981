package riot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRiotID(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		wantName string
		wantTag  string
		wantErr  bool
	}{
		{name: "valid", raw: "Faker#KR1", wantName: "Faker", wantTag: "KR1"},
		{name: "name with spaces", raw: "Hide on bush#KR1", wantName: "Hide on bush", wantTag: "KR1"},
		{name: "hash in name splits on last", raw: "We#ird#NA1", wantName: "We#ird", wantTag: "NA1"},
		{name: "missing tag", raw: "Faker", wantErr: true},
		{name: "empty tag", raw: "Faker#", wantErr: true},
		{name: "empty name", raw: "#KR1", wantErr: true},
		{name: "name too short", raw: "ab#KR1", wantErr: true},
		{name: "name too long", raw: "abcdefghijklmnopq#KR1", wantErr: true},
		{name: "tag too short", raw: "Faker#KR", wantErr: true},
		{name: "tag too long", raw: "Faker#KR1234", wantErr: true},
		{name: "surrounding spaces trimmed", raw: " Faker #KR1", wantName: "Faker", wantTag: "KR1"},
		{name: "multibyte name counts characters", raw: "페이커선수님#KR1", wantName: "페이커선수님", wantTag: "KR1"},
		{name: "multibyte name at upper bound", raw: "가나다라마바사아자차카타파하거너#KR1", wantName: "가나다라마바사아자차카타파하거너", wantTag: "KR1"},
		{name: "multibyte name too short", raw: "가나#KR1", wantErr: true},
		{name: "multibyte tag counts characters", raw: "Faker#한국어", wantName: "Faker", wantTag: "한국어"},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := ParseRiotID(tc.raw)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRiotID)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantName, id.GameName)
			assert.Equal(t, tc.wantTag, id.TagLine)
		})
	}
}

func TestRiotIDString(t *testing.T) {
	id := RiotID{GameName: "Faker", TagLine: "KR1"}
	assert.Equal(t, "Faker#KR1", id.String())
}
