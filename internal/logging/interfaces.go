// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Fatal(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

// SecurityLoggerInterface emits structured security events that are meant to
// be picked up by the SIEM pipeline, separate from operational logs.
type SecurityLoggerInterface interface {
	AuthzFailure(subject, action string)
	Impersonation(operatorID, targetID, tenantID string)
	ContextSwitch(accountID, scope, tenantID string)
	SystemStartup()
	SystemShutdown()
}
