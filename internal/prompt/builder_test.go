package prompt_test

import (
	"strings"
	"testing"

	"interview-assistant-be/internal/constant"
	"interview-assistant-be/internal/pkg/serverutils"
	"interview-assistant-be/internal/prompt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const instruction = "You are a senior developer in an interview."

func TestBuildWithoutResume(t *testing.T) {
	b := prompt.NewBuilder(instruction, false)

	messages, err := b.Build("What is a goroutine?", "")
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, constant.ChatMessageRoleSystem, messages[0].Role)
	assert.Equal(t, instruction, messages[0].Content)
	assert.Equal(t, constant.ChatMessageRoleUser, messages[1].Role)
	assert.Equal(t, "What is a goroutine?", messages[1].Content)
}

func TestBuildEmbedsResumeBetweenInstructionAndQuestion(t *testing.T) {
	b := prompt.NewBuilder(instruction, false)

	messages, err := b.Build("Tell me about yourself", "Senior engineer, 5 years Go")
	require.NoError(t, err)

	system := messages[0].Content
	instructionIdx := strings.Index(system, instruction)
	resumeIdx := strings.Index(system, "Senior engineer, 5 years Go")
	require.GreaterOrEqual(t, instructionIdx, 0)
	require.Greater(t, resumeIdx, instructionIdx)

	assert.Equal(t, "Tell me about yourself", messages[1].Content)
}

func TestBuildRequireResumeFailsWithMissingContext(t *testing.T) {
	b := prompt.NewBuilder(instruction, true)

	_, err := b.Build("Tell me about yourself", "")
	require.Error(t, err)

	apiErr, ok := serverutils.AsApiError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.CodeMissingContext, apiErr.Code)
}

func TestBuildRequireResumeProceedsWithResume(t *testing.T) {
	b := prompt.NewBuilder(instruction, true)

	messages, err := b.Build("Tell me about yourself", "Senior engineer")
	require.NoError(t, err)
	assert.Len(t, messages, 2)
}

func TestBuildRejectsEmptyQuestion(t *testing.T) {
	b := prompt.NewBuilder(instruction, false)

	_, err := b.Build("   ", "resume")
	require.Error(t, err)

	apiErr, ok := serverutils.AsApiError(err)
	require.True(t, ok)
	assert.Equal(t, serverutils.CodeInvalidRequest, apiErr.Code)
}
