package gcs_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/depfix/pkg/domain/types"
	"github.com/secmon-lab/depfix/pkg/infra/gcs"
	"github.com/secmon-lab/depfix/pkg/utils/testutil"
)

func TestObjectName(t *testing.T) {
	gt.V(t, gcs.ObjectNameForTest("", "run.log")).Equal("run.log")
	gt.V(t, gcs.ObjectNameForTest("depfix/transcripts", "run.log")).Equal("depfix/transcripts/run.log")
	gt.V(t, gcs.ObjectNameForTest("depfix/", "run.log")).Equal("depfix/run.log")
}

func TestPut(t *testing.T) {
	bucket := testutil.GetEnvOrSkip(t, "TEST_GCS_BUCKET")
	ctx := context.Background()

	client := gt.R1(gcs.New(ctx, types.GCSBucket(bucket), "depfix-test")).NoError(t)
	name := time.Now().Format("transcript_20060102_150405.log")

	objURL := gt.R1(client.Put(ctx, name, strings.NewReader("[depfix] hello\n"))).NoError(t)
	gt.V(t, objURL).Equal("gs://" + bucket + "/depfix-test/" + name)
}
