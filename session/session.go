package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/projecteru2/core/log"
	"github.com/vmware/govmomi"
	govsession "github.com/vmware/govmomi/session"
	"github.com/vmware/govmomi/vim25"
	"github.com/vmware/govmomi/vim25/soap"
	"github.com/vmware/govmomi/vim25/types"

	"github.com/projecteru2/vmreport/config"
	"github.com/projecteru2/vmreport/utils"
)

// Session is one authenticated connection to a vSphere endpoint.
// Close logs out exactly once no matter how many times it is called.
type Session struct {
	client *govmomi.Client
	host   string
	user   string

	logout   func(context.Context) error
	once     sync.Once
	closeErr error
}

// Connect logs in to the endpoint described by conf.
// conf.Password must already be resolved (see ResolvePassword).
func Connect(ctx context.Context, conf *config.Config) (*Session, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	u, err := conf.SDKURL()
	if err != nil {
		return nil, err
	}

	sc := soap.NewClient(u, conf.Insecure)
	if !conf.Insecure && conf.CAFile != "" {
		if err := sc.SetRootCAs(conf.CAFile); err != nil {
			return nil, fmt.Errorf("load ca file %s: %w", conf.CAFile, err)
		}
	}

	vc, err := vim25.NewClient(ctx, sc)
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", conf.Address(), err)
	}
	c := &govmomi.Client{
		Client:         vc,
		SessionManager: govsession.NewManager(vc),
	}
	if err := c.Login(ctx, u.User); err != nil {
		return nil, fmt.Errorf("login %s as %s: %w", conf.Address(), conf.User, err)
	}

	log.WithFunc("session.Connect").Debugf(ctx, "connected to %s as %s (insecure: %t)", conf.Address(), conf.User, conf.Insecure)
	return newSession(c, conf.Host, conf.User, c.Logout), nil
}

func newSession(c *govmomi.Client, host, user string, logout func(context.Context) error) *Session {
	return &Session{client: c, host: host, user: user, logout: logout}
}

// Client returns the underlying vim25 client.
func (s *Session) Client() *vim25.Client { return s.client.Client }

// Close terminates the server-side session. Later calls return the first result.
func (s *Session) Close(ctx context.Context) error {
	s.once.Do(func() {
		// the command context may already be canceled by a signal; logout must still go out.
		s.closeErr = s.logout(context.WithoutCancel(ctx))
		if s.closeErr != nil {
			log.WithFunc("session.Close").Warnf(ctx, "logout %s as %s: %v", s.host, s.user, s.closeErr)
			return
		}
		log.WithFunc("session.Close").Debugf(ctx, "logged out %s from %s", s.user, s.host)
	})
	return s.closeErr
}

// WithOperationID tags every SOAP request issued with the returned context
// with a fresh operation ID, visible in the vCenter vpxd logs.
func WithOperationID(ctx context.Context) (context.Context, string) {
	id := utils.OperationID()
	return context.WithValue(ctx, types.ID{}, id), id
}
