package auth

import (
	"fmt"
	"os"
)

// Source indicates where a password was found
type Source string

const (
	SourceFlag   Source = "flag"
	SourceEnv    Source = "env"
	SourcePrompt Source = "prompt"
	SourceNone   Source = "none"
)

// PasswordEnv is the environment variable read by non-interactive commands.
const PasswordEnv = "CLIENTREC_PASSWORD"

// Result contains the resolved password and its source
type Result struct {
	Password string
	Source   Source
}

// PasswordProvider attempts to provide a password. It returns "" when its
// source has nothing; an error only for unexpected failures.
type PasswordProvider func() (string, Source, error)

// Resolver resolves a password from several sources in priority order
type Resolver struct {
	providers []PasswordProvider
}

// NewResolver creates an empty resolver.
func NewResolver() *Resolver {
	return &Resolver{providers: make([]PasswordProvider, 0, 3)}
}

// WithFlagValue adds a flag value (highest priority).
func (r *Resolver) WithFlagValue(value string) *Resolver {
	r.providers = append(r.providers, func() (string, Source, error) {
		return value, SourceFlag, nil
	})

	return r
}

// WithEnv adds an environment variable as a source
func (r *Resolver) WithEnv(envVar string) *Resolver {
	r.providers = append(r.providers, func() (string, Source, error) {
		return os.Getenv(envVar), SourceEnv, nil
	})

	return r
}

// WithPrompt adds an interactive prompt, usually last.
func (r *Resolver) WithPrompt(prompt func() (string, error)) *Resolver {
	r.providers = append(r.providers, func() (string, Source, error) {
		p, err := prompt()
		return p, SourcePrompt, err
	})

	return r
}

// Resolve returns the first non-empty password.
func (r *Resolver) Resolve() (*Result, error) {
	for _, provider := range r.providers {
		password, source, err := provider()
		if err != nil {
			return nil, fmt.Errorf("password provider error: %w", err)
		}

		if password != "" {
			return &Result{Password: password, Source: source}, nil
		}
	}

	return nil, fmt.Errorf("password required (use --password, %s or a terminal): %w", PasswordEnv, ErrInvalidCredentials)
}
