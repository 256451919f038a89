package jobs_test

import (
	"errors"
	"testing"

	"deliverytracker/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingJob struct {
	name     string
	startErr error
	events   *[]string
}

func (j recordingJob) Start() error {
	*j.events = append(*j.events, "start "+j.name)
	return j.startErr
}

func (j recordingJob) Stop() {
	*j.events = append(*j.events, "stop "+j.name)
}

func TestJobManager_StartAllStopAll(t *testing.T) {
	var events []string
	jm := jobs.NewJobManager(discardLogger(),
		recordingJob{name: "a", events: &events},
		recordingJob{name: "b", events: &events},
	)

	require.NoError(t, jm.StartAll())
	jm.StopAll()

	assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
}

func TestJobManager_StartAll_StopsStartedJobsOnFailure(t *testing.T) {
	var events []string
	jm := jobs.NewJobManager(discardLogger(),
		recordingJob{name: "a", events: &events},
		recordingJob{name: "b", events: &events, startErr: errors.New("bad schedule")},
		recordingJob{name: "c", events: &events},
	)

	err := jm.StartAll()

	assert.ErrorContains(t, err, "bad schedule")
	assert.Equal(t, []string{"start a", "start b", "stop a"}, events)
}
