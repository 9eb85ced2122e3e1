package bouncer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	cases := []struct {
		message string
		parseid int
		command int
	}{
		{"hello there", PARSEID_NO_BOT_PREFIX, 0},
		{"bouncer", PARSEID_NO_COMMAND, 0},
		{"bouncer   ", PARSEID_NO_COMMAND, 0},
		{"bouncer status", PARSEID_OK, COMMAND_STATUS},
		{"bouncer check", PARSEID_OK, COMMAND_CHECK},
		{"bouncer help", PARSEID_OK, COMMAND_HELP},
		{"bouncer  status ", PARSEID_OK, COMMAND_STATUS},
		{"bouncer dance", PARSEID_COMMAND_NOT_RECOGNISED, 0},
		{"bouncer status now", PARSEID_UNEXPECTED_INPUT, COMMAND_STATUS},
	}

	for _, c := range cases {
		result := Parse(c.message)
		assert.Equal(t, c.parseid, result.parseid, "message %q", c.message)
		if c.parseid == PARSEID_OK {
			assert.Equal(t, c.command, result.command, "message %q", c.message)
		}
	}
}

func TestParse_ErrorMessages(t *testing.T) {
	result := Parse("bouncer dance")
	assert.Contains(t, result.errorMessage, "dance")

	result = Parse("bouncer")
	assert.Equal(t, errorMessages[PARSEID_NO_COMMAND], result.errorMessage)
}
