package event

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/interview-tracker/internal/application/service"
	"github.com/khoahotran/interview-tracker/pkg/logger"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestPublishInterviewEvent_KeyedByOwner(t *testing.T) {
	iw, sw := &recordingWriter{}, &recordingWriter{}
	c := &KafkaProducerClient{InterviewEventsWriter: iw, StandupEventsWriter: sw, logger: logger.NewNopLogger()}

	owner := uuid.New()
	err := c.PublishInterviewEvent(context.Background(), service.ChangeEvent{
		EventType:  service.EventCreated,
		ResourceID: uuid.New(),
		OwnerID:    owner,
		Pages:      []string{service.PageInterviewsAll},
	})
	require.NoError(t, err)

	require.Len(t, iw.msgs, 1)
	assert.Empty(t, sw.msgs)
	assert.Equal(t, owner.String(), string(iw.msgs[0].Key))

	var got service.ChangeEvent
	require.NoError(t, json.Unmarshal(iw.msgs[0].Value, &got))
	assert.Equal(t, "interview", got.Resource)
	assert.Equal(t, []string{service.PageInterviewsAll}, got.Pages)
}

func TestPublishStandupEvent_WriteError(t *testing.T) {
	c := &KafkaProducerClient{StandupEventsWriter: &recordingWriter{err: errors.New("broker down")}, logger: logger.NewNopLogger()}

	err := c.PublishStandupEvent(context.Background(), service.ChangeEvent{OwnerID: uuid.New()})
	assert.ErrorContains(t, err, "broker down")
}
