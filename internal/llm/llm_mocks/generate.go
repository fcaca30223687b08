package llm_mocks

//go:generate mockgen -source=../client.go -destination=llm_mocks.go -package=llm_mocks

// This file contains the go:generate directive to generate mocks for the
// model gateway interface. To regenerate the mocks, run:
//   go generate ./internal/llm/llm_mocks
