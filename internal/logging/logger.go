// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a production zap logger at the given level.
// An unparsable level falls back to error to keep noisy environments quiet.
func NewLogger(level string) *Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.ErrorLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: l.Sugar(),
		security:      &SecurityLogger{l: l.Named("security")},
	}
}

// SecurityLogger writes audit-adjacent security events with a fixed schema.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) AuthzFailure(subject, action string) {
	s.l.Warn("authorization failure",
		zap.String("event", "authz_failure"),
		zap.String("subject", subject),
		zap.String("action", action),
	)
}

func (s *SecurityLogger) Impersonation(operatorID, targetID, tenantID string) {
	s.l.Info("impersonation session started",
		zap.String("event", "impersonation"),
		zap.String("operator_id", operatorID),
		zap.String("target_id", targetID),
		zap.String("tenant_id", tenantID),
	)
}

func (s *SecurityLogger) ContextSwitch(accountID, scope, tenantID string) {
	s.l.Info("active context switched",
		zap.String("event", "context_switch"),
		zap.String("account_id", accountID),
		zap.String("scope", scope),
		zap.String("tenant_id", tenantID),
	)
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("service started", zap.String("event", "system_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("service stopped", zap.String("event", "system_shutdown"))
}
