package errors

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockColorOutput struct {
	mock.Mock
}

func (m *mockColorOutput) Error(msgs ...string)   { m.Called(msgs) }
func (m *mockColorOutput) Warning(msgs ...string) { m.Called(msgs) }
func (m *mockColorOutput) Info(msgs ...string)    { m.Called(msgs) }
func (m *mockColorOutput) Success(msgs ...string) { m.Called(msgs) }

func TestCLIHandlerForwards(t *testing.T) {
	out := new(mockColorOutput)
	out.On("Error", []string{"e"}).Return()
	out.On("Warning", []string{"w"}).Return()
	out.On("Info", []string{"i"}).Return()
	out.On("Success", []string{"s"}).Return()

	h := NewCLIHandler(out)
	h.Error("e")
	h.Warning("w")
	h.Info("i")
	h.Success("s")

	out.AssertExpectations(t)
}

func TestCLIHandlerQuietSuppressesInfo(t *testing.T) {
	out := new(mockColorOutput)
	out.On("Error", []string{"e"}).Return()

	h := NewCLIHandler(out)
	h.SetQuiet(true)
	h.Info("i")
	h.Success("s")
	h.Error("e")

	out.AssertExpectations(t)
	out.AssertNotCalled(t, "Info", mock.Anything)
	out.AssertNotCalled(t, "Success", mock.Anything)
}

func TestTUIHandlerRecordsMessages(t *testing.T) {
	var seen []Message
	h := NewTUIHandler(func(msg Message) { seen = append(seen, msg) })

	_, ok := h.GetLatest()
	assert.False(t, ok)

	h.Error("network down")
	h.Success("saved")

	latest, ok := h.GetLatest()
	require.True(t, ok)
	assert.Equal(t, "saved", latest.Text)
	assert.Equal(t, MessageTypeSuccess, latest.Type)
	assert.Len(t, seen, 2)
	assert.Equal(t, MessageTypeError, seen[0].Type)

	h.Clear()
	assert.Empty(t, h.GetAll())
}

func TestTUIHandlerActiveExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	h := NewTUIHandler(nil)
	h.now = func() time.Time { return now }

	h.Info("hello")
	msg, ok := h.Active(time.Second)
	require.True(t, ok)
	assert.Equal(t, "hello", msg.Text)

	now = now.Add(time.Second)
	_, ok = h.Active(time.Second)
	assert.False(t, ok)
}

func TestTUIHandlerLimit(t *testing.T) {
	h := NewTUIHandler(nil)
	for i := 0; i < defaultMessageLimit+5; i++ {
		h.Warning("w")
	}
	assert.Len(t, h.GetAll(), defaultMessageLimit)
}

func TestMessageTypeString(t *testing.T) {
	assert.Equal(t, "error", MessageTypeError.String())
	assert.Equal(t, "warning", MessageTypeWarning.String())
	assert.Equal(t, "info", MessageTypeInfo.String())
	assert.Equal(t, "success", MessageTypeSuccess.String())
}
