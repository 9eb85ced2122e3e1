package bouncer

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const prefix string = "bouncer"

const (
	COMMAND_STATUS = iota
	COMMAND_CHECK  = iota
	COMMAND_HELP   = iota
)

const (
	PARSEID_OK                     = iota
	PARSEID_NO_BOT_PREFIX          = iota
	PARSEID_NO_COMMAND             = iota
	PARSEID_COMMAND_NOT_RECOGNISED = iota
	PARSEID_UNEXPECTED_INPUT       = iota
)

var errorMessages map[int]string = map[int]string{
	PARSEID_NO_COMMAND:             "No command provided",
	PARSEID_COMMAND_NOT_RECOGNISED: "Command `%s` not recognised",
	PARSEID_UNEXPECTED_INPUT:       "Command `%s` does not take an argument",
}

type ParseResult struct {
	command      int
	parseid      int
	errorMessage string
}

func Parse(message string) ParseResult {

	// The message has to start with the bot prefix
	if !strings.HasPrefix(message, prefix) {
		return ParseResult{parseid: PARSEID_NO_BOT_PREFIX}
	}

	// Get the command if valid
	words := strings.Fields(message[len(prefix):])
	if len(words) == 0 {
		parseid := PARSEID_NO_COMMAND
		return ParseResult{parseid: parseid, errorMessage: errorMessages[parseid]}
	}
	commandString := words[0]
	words = words[1:]

	// Match the command. None of them takes an argument

	var command int
	switch commandString {
	case "status":
		// bouncer status
		command = COMMAND_STATUS
	case "check":
		// bouncer check
		command = COMMAND_CHECK
	case "help":
		// bouncer help
		command = COMMAND_HELP
	default:
		log.Debug().Msg(fmt.Sprintf("Command not recognised: %s", commandString))
		parseid := PARSEID_COMMAND_NOT_RECOGNISED
		return ParseResult{parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], commandString)}
	}

	if len(words) != 0 {
		parseid := PARSEID_UNEXPECTED_INPUT
		return ParseResult{command: command, parseid: parseid, errorMessage: fmt.Sprintf(errorMessages[parseid], commandString)}
	}
	return ParseResult{command: command, parseid: PARSEID_OK}
}
