package session_test

import (
	"strconv"
	"sync"
	"testing"

	"interview-assistant-be/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGet(t *testing.T) {
	repo := session.NewRepository()

	sess := repo.Create()
	require.NotEmpty(t, sess.ID)
	assert.False(t, sess.HasResume())

	got, ok := repo.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, sess.ID, got.ID)
}

func TestResumeContextPersistsAcrossQuestions(t *testing.T) {
	repo := session.NewRepository()

	sess := repo.Create()
	sess.ResumeContext = "Senior engineer, 5 years Go"
	repo.Save(sess)

	sess.LastQuestion = "Tell me about yourself"
	sess.LastAnswer = "I am a senior engineer."
	repo.Save(sess)

	got, _ := repo.Get(sess.ID)
	assert.Equal(t, "Senior engineer, 5 years Go", got.ResumeContext)
	assert.Equal(t, "Tell me about yourself", got.LastQuestion)
	assert.True(t, got.HasResume())
}

func TestGetReturnsIndependentCopies(t *testing.T) {
	repo := session.NewRepository()

	sess := repo.Create()
	sess.ResumeContext = "original"
	repo.Save(sess)

	a, _ := repo.Get(sess.ID)
	b, _ := repo.Get(sess.ID)
	require.NotSame(t, a, b)

	// Mutating a copy is invisible until Save.
	a.ResumeContext = "changed"
	stored, _ := repo.Get(sess.ID)
	assert.Equal(t, "original", stored.ResumeContext)

	repo.Save(a)
	stored, _ = repo.Get(sess.ID)
	assert.Equal(t, "changed", stored.ResumeContext)
}

func TestConcurrentReadersAndWriters(t *testing.T) {
	repo := session.NewRepository()
	sess := repo.Create()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s, ok := repo.Get(sess.ID)
				if !ok {
					continue
				}
				s.ResumeContext = strconv.Itoa(n)
				repo.Save(s)
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if s, ok := repo.Get(sess.ID); ok {
					_ = s.HasResume()
				}
			}
		}()
	}
	wg.Wait()
}

func TestGetUnknownSession(t *testing.T) {
	repo := session.NewRepository()

	_, ok := repo.Get("nope")
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	repo := session.NewRepository()

	sess := repo.Create()
	repo.Delete(sess.ID)

	_, ok := repo.Get(sess.ID)
	assert.False(t, ok)
}
