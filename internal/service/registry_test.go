package service

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIssueMintsDistinctTokens(t *testing.T) {
	r := NewTokenRegistry()
	a := r.Issue()
	b := r.Issue()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}

func TestConsumeIsSingleUse(t *testing.T) {
	r := NewTokenRegistry()
	token := r.Issue()

	assert.True(t, r.Consume(token))
	assert.False(t, r.Consume(token), "a token must not be consumable twice")
	assert.False(t, r.Consume("never-issued"))
}

func TestRestoreMakesTokenUsableAgain(t *testing.T) {
	r := NewTokenRegistry()
	token := r.Issue()

	assert.True(t, r.Consume(token))
	r.Restore(token)
	assert.True(t, r.Consume(token))
}

func TestConcurrentConsumeHasOneWinner(t *testing.T) {
	r := NewTokenRegistry()
	token := r.Issue()

	var wins int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if r.Consume(token) {
				atomic.AddInt64(&wins, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), wins, "exactly one concurrent registration may consume a token")
}
