package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"employeetracker/internal/action"
	"employeetracker/internal/session"
)

type Server struct {
	actions *action.Set
	db      session.Store
	logger  *zap.Logger
	mcp     *sdk.Server
}

func NewServer(actions *action.Set, db session.Store, version string, logger *zap.Logger) *Server {
	s := &Server{
		actions: actions,
		db:      db,
		logger:  logger,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "employeetracker",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
