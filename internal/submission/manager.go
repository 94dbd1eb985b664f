// Package submission keeps a short-lived record of submissions handled by
// the server so their outcome can be inspected after the page is rendered.
package submission

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hackrx/docqa-web/internal/models"
)

// Manager tracks submissions in memory.
type Manager struct {
	submissions map[string]*models.Submission
	mu          sync.RWMutex
}

// NewManager creates an empty submission manager.
func NewManager() *Manager {
	return &Manager{
		submissions: make(map[string]*models.Submission),
	}
}

// Start registers a new submission in idle status.
func (m *Manager) Start(file *models.SelectedFile, questionCount int) *models.Submission {
	var name string
	var size int64
	if file != nil {
		name, size = file.Name, file.Size
	}
	sub := models.NewSubmission(uuid.New().String(), name, size, questionCount)

	m.mu.Lock()
	m.submissions[sub.ID] = sub
	m.mu.Unlock()

	fmt.Printf("[Submission %s] Started: %q, %d questions\n", sub.ID[:8], name, questionCount)
	return sub
}

// Get returns a copy of the submission with the given ID.
func (m *Manager) Get(id string) (*models.Submission, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sub, ok := m.submissions[id]
	if !ok {
		return nil, false
	}
	cp := *sub
	return &cp, true
}

// Recent returns up to limit submissions, newest first.
func (m *Manager) Recent(limit int) []*models.Submission {
	m.mu.RLock()
	list := make([]*models.Submission, 0, len(m.submissions))
	for _, sub := range m.submissions {
		cp := *sub
		list = append(list, &cp)
	}
	m.mu.RUnlock()

	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list
}

// Update records a mode change for a submission. Settled modes also set
// the completion time and outcome details.
func (m *Manager) Update(id string, mode models.Mode, resp *models.UploadResponse, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub, ok := m.submissions[id]
	if !ok {
		return
	}

	sub.Status = mode
	if !mode.Settled() {
		return
	}

	now := time.Now()
	sub.CompletedAt = &now
	switch {
	case err != nil:
		sub.Error = err.Error()
	case resp != nil && resp.Failed():
		sub.Error = resp.Error
	case resp != nil:
		sub.AnswerCount = len(resp.Answers)
	}

	if sub.Error != "" {
		fmt.Printf("[Submission %s] Error: %s\n", id[:8], sub.Error)
	} else {
		fmt.Printf("[Submission %s] Complete: %d answers in %s\n", id[:8], sub.AnswerCount, now.Sub(sub.CreatedAt).Round(time.Millisecond))
	}
}

// CleanupOld removes settled submissions completed before maxAge ago.
func (m *Manager) CleanupOld(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for id, sub := range m.submissions {
		if sub.Status.Settled() && sub.CompletedAt != nil && sub.CompletedAt.Before(cutoff) {
			delete(m.submissions, id)
			removed++
		}
	}
	return removed
}
