package resolver

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockLookup struct {
	mock.Mock
}

func (m *MockLookup) LookupAddr(ctx context.Context, addr string) ([]string, error) {
	args := m.Called(ctx, addr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func TestHostnameResolver_Hostname(t *testing.T) {
	tests := []struct {
		name      string
		addr      net.Addr
		setupMock func(*MockLookup)
		expected  string
	}{
		{
			name: "reverse lookup succeeds",
			addr: &net.TCPAddr{IP: net.ParseIP("10.0.0.7"), Port: 9090},
			setupMock: func(m *MockLookup) {
				m.On("LookupAddr", mock.Anything, "10.0.0.7").Return([]string{"web-1.internal.", "alias."}, nil)
			},
			expected: "web-1.internal",
		},
		{
			name: "lookup fails falls back to ip",
			addr: &net.TCPAddr{IP: net.ParseIP("10.0.0.8"), Port: 9090},
			setupMock: func(m *MockLookup) {
				m.On("LookupAddr", mock.Anything, "10.0.0.8").Return(nil, errors.New("no such host"))
			},
			expected: "10.0.0.8",
		},
		{
			name: "lookup finds nothing",
			addr: &net.TCPAddr{IP: net.ParseIP("::1"), Port: 9090},
			setupMock: func(m *MockLookup) {
				m.On("LookupAddr", mock.Anything, "::1").Return([]string{}, nil)
			},
			expected: "::1",
		},
		{
			name:      "no address",
			addr:      nil,
			setupMock: func(m *MockLookup) {},
			expected:  "localhost",
		},
		{
			name: "generic addr string",
			addr: fakeAddr("127.0.0.1:80"),
			setupMock: func(m *MockLookup) {
				m.On("LookupAddr", mock.Anything, "127.0.0.1").Return([]string{"localhost"}, nil)
			},
			expected: "localhost",
		},
		{
			name:      "unparseable addr",
			addr:      fakeAddr("@unix-socket"),
			setupMock: func(m *MockLookup) {},
			expected:  "localhost",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &MockLookup{}
			tt.setupMock(m)

			r := NewHostnameResolver(m, time.Second)

			assert.Equal(t, tt.expected, r.Hostname(context.Background(), tt.addr))
			m.AssertExpectations(t)
		})
	}
}

func TestHostnameResolver_AppliesTimeout(t *testing.T) {
	m := &MockLookup{}
	m.On("LookupAddr", mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	}), "10.0.0.9").Return([]string{"db"}, nil)

	r := NewHostnameResolver(m, 50*time.Millisecond)

	assert.Equal(t, "db", r.Hostname(context.Background(), &net.TCPAddr{IP: net.ParseIP("10.0.0.9")}))
	m.AssertExpectations(t)
}

func TestNewHostnameResolver_DefaultsToSystemResolver(t *testing.T) {
	r := NewHostnameResolver(nil, 0)
	assert.Equal(t, net.DefaultResolver, r.lookup)
}

type fakeAddr string

func (a fakeAddr) Network() string { return "fake" }
func (a fakeAddr) String() string  { return string(a) }
