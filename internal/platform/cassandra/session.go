// File: internal/platform/cassandra/session.go
package cassandra

import (
	"context"
	"fmt"

	"gitmeet_backend/internal/config"

	"github.com/gocql/gocql"
	"go.uber.org/zap"
)

// Session wraps a gocql session and implements Store. It is constructed once
// at process start and closed at shutdown; everything downstream receives it
// as an injected Store, never from ambient scope.
type Session struct {
	db     *gocql.Session
	logger *zap.Logger
}

var _ Store = (*Session)(nil)

// New connects to the cluster and ensures the application schema exists.
func New(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	cluster := gocql.NewCluster(cfg.CassandraHostList()...)
	cluster.Port = cfg.CassandraPort
	cluster.Keyspace = cfg.CassandraKeyspace
	cluster.Consistency = gocql.LocalQuorum
	cluster.Timeout = cfg.CassandraTimeout
	cluster.ConnectTimeout = cfg.CassandraTimeout
	if cfg.CassandraUsername != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: cfg.CassandraUsername,
			Password: cfg.CassandraPassword,
		}
	}

	db, err := cluster.CreateSession()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to cassandra: %w", err)
	}

	s := &Session{db: db, logger: logger.Named("cassandra")}

	if err := EnsureSchema(context.Background(), s, s.logger); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ensure cassandra schema: %w", err)
	}

	s.logger.Info("Connected to Cassandra",
		zap.Strings("hosts", cfg.CassandraHostList()),
		zap.String("keyspace", cfg.CassandraKeyspace))
	return s, nil
}

func (s *Session) Query(ctx context.Context, stmt string, values ...interface{}) ([]Row, error) {
	iter := s.db.Query(stmt, values...).WithContext(ctx).Iter()
	raw, err := iter.SliceMap()
	if err != nil {
		return nil, err
	}
	rows := make([]Row, len(raw))
	for i, m := range raw {
		rows[i] = Row(m)
	}
	return rows, nil
}

func (s *Session) Exec(ctx context.Context, stmt string, values ...interface{}) error {
	return s.db.Query(stmt, values...).WithContext(ctx).Exec()
}

func (s *Session) ExecCAS(ctx context.Context, stmt string, values ...interface{}) (bool, error) {
	return s.db.Query(stmt, values...).WithContext(ctx).MapScanCAS(map[string]interface{}{})
}

// Close terminates the underlying session.
func (s *Session) Close() {
	s.logger.Info("Closing Cassandra session")
	s.db.Close()
}
