package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// API errors
	ErrAPIRequest = fmt.Errorf("API request failed")

	// Player errors
	ErrPlayerNotFound = fmt.Errorf("player executable not found")
	ErrPlayerSpawn    = fmt.Errorf("failed to launch player")

	// Input validation errors
	ErrInvalidInput     = fmt.Errorf("invalid input")
	ErrInvalidSelection = fmt.Errorf("invalid selection")
	ErrMissingArgument  = fmt.Errorf("missing required argument")
)
