package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/hiring-coordinator/internal/config"
)

func TestPrintQuestions_StaticBank(t *testing.T) {
	var buf bytes.Buffer

	err := printQuestions(context.Background(), &buf, &config.App{}, "technical", 3)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "TECHNICAL INTERVIEW QUESTIONS")
	assert.Contains(t, out, "[system_design/medium]")
}

func TestPrintQuestions_UnknownTypeFallsBackToGeneral(t *testing.T) {
	var buf bytes.Buffer

	err := printQuestions(context.Background(), &buf, &config.App{}, "vibes", 2)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "VIBES INTERVIEW QUESTIONS")
}
