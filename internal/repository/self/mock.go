package self

import (
	"context"
	"fmt"
	"sync"

	"github.com/eurofurence/reg-payment-paystack-callback/internal/api/v1/paystackapi"
)

type Mock interface {
	Self

	Reset()
	Recording() []string
	SimulateError(err error)
}

type mockImpl struct {
	mu            sync.Mutex
	recording     []string
	simulateError error
}

func newMock() Mock {
	return &mockImpl{
		recording: make([]string, 0),
	}
}

func (m *mockImpl) CallWebhook(ctx context.Context, event paystackapi.WebhookDto) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.simulateError != nil {
		return m.simulateError
	}
	m.recording = append(m.recording, fmt.Sprintf("CallWebhook %s %s", event.Event, string(event.Data)))
	return nil
}

func (m *mockImpl) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.recording = make([]string, 0)
	m.simulateError = nil
}

func (m *mockImpl) Recording() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]string, len(m.recording))
	copy(result, m.recording)
	return result
}

func (m *mockImpl) SimulateError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.simulateError = err
}
