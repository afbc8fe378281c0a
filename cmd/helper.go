package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/projecteru2/core/log"

	"github.com/projecteru2/vmreport/session"
)

// openSession validates the connection settings, prompts for a missing
// password and logs in. The returned context tags every request with a fresh
// operation ID. Callers must defer sess.Close.
func openSession(ctx context.Context) (context.Context, *session.Session, error) {
	if err := conf.Validate(); err != nil {
		return ctx, nil, fmt.Errorf("config: %w", err)
	}
	if err := session.ResolvePassword(conf, os.Stdin, os.Stderr); err != nil {
		return ctx, nil, err
	}

	ctx, opID := session.WithOperationID(ctx)
	log.WithFunc("cmd.openSession").Debugf(ctx, "operation id: %s", opID)

	sess, err := session.Connect(ctx, conf)
	if err != nil {
		return ctx, nil, err
	}
	return ctx, sess, nil
}
