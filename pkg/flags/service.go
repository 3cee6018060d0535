// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package flags

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/canonical/tenant-context-service/internal/audit"
	"github.com/canonical/tenant-context-service/internal/logging"
	"github.com/canonical/tenant-context-service/internal/monitoring"
	"github.com/canonical/tenant-context-service/internal/registry"
	"github.com/canonical/tenant-context-service/internal/storage"
	"github.com/canonical/tenant-context-service/internal/tracing"
	"github.com/canonical/tenant-context-service/internal/types"
)

type Service struct {
	storage StorageInterface
	auditor audit.AuditorInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	auditor audit.AuditorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		auditor: auditor,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) IsEnabled(ctx context.Context, tenantID, flagKey string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "flags.Service.IsEnabled")
	defer span.End()

	flag, err := s.storage.GetFeatureFlagByKey(ctx, flagKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// No store row, the registry default decides. Unknown keys
			// resolve to false.
			capability, ok := registry.Get(flagKey)
			return ok && capability.DefaultEnabled, nil
		}
		return false, fmt.Errorf("failed to load flag %q: %w", flagKey, err)
	}

	override, err := s.storage.GetFeatureFlagOverride(ctx, tenantID, flag.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return flag.EnabledGlobally, nil
		}
		return false, fmt.Errorf("failed to load flag override %q: %w", flagKey, err)
	}

	return override.Enabled, nil
}

func (s *Service) ResolveAll(ctx context.Context, tenantID string) ([]ResolvedFlag, error) {
	ctx, span := s.tracer.Start(ctx, "flags.Service.ResolveAll")
	defer span.End()

	storeFlags, err := s.storage.ListFeatureFlags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list flags: %w", err)
	}

	overrides, err := s.storage.ListFeatureFlagOverridesByTenantID(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list flag overrides: %w", err)
	}

	overrideByFlagID := make(map[string]*types.FeatureFlagOverride, len(overrides))
	for _, o := range overrides {
		overrideByFlagID[o.FlagID] = o
	}

	// Set-union of store keys and registry keys: a deprecated flag may
	// exist only in the store, an untouched one only in the registry.
	resolved := make(map[string]ResolvedFlag, len(storeFlags))
	for _, flag := range storeFlags {
		entry := ResolvedFlag{
			Key:             flag.Key,
			Name:            flag.Name,
			EnabledGlobally: flag.EnabledGlobally,
			Effective:       flag.EnabledGlobally,
		}
		if o, ok := overrideByFlagID[flag.ID]; ok {
			enabled := o.Enabled
			entry.Override = &enabled
			entry.Effective = enabled
		}
		resolved[flag.Key] = entry
	}

	for _, key := range registry.Keys() {
		if _, ok := resolved[key]; ok {
			continue
		}
		capability, _ := registry.Get(key)
		resolved[key] = ResolvedFlag{
			Key:             key,
			Name:            capability.Name,
			EnabledGlobally: capability.DefaultEnabled,
			Effective:       capability.DefaultEnabled,
		}
	}

	result := make([]ResolvedFlag, 0, len(resolved))
	for _, entry := range resolved {
		result = append(result, entry)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })

	return result, nil
}

func (s *Service) SetOverride(ctx context.Context, tenantID, flagKey string, enabled bool, updatedBy string) error {
	ctx, span := s.tracer.Start(ctx, "flags.Service.SetOverride")
	defer span.End()

	before, err := s.IsEnabled(ctx, tenantID, flagKey)
	if err != nil {
		return err
	}

	flag, err := s.ensureFlag(ctx, flagKey)
	if err != nil {
		return err
	}

	if err := s.storage.UpsertFeatureFlagOverride(ctx, &types.FeatureFlagOverride{
		TenantID:  tenantID,
		FlagID:    flag.ID,
		Enabled:   enabled,
		UpdatedBy: updatedBy,
	}); err != nil {
		return fmt.Errorf("failed to write flag override: %w", err)
	}

	s.auditor.Record(ctx, updatedBy, audit.ActionFlagOverrideSet, &tenantID, map[string]string{
		"flag_key":         flagKey,
		"effective_before": strconv.FormatBool(before),
		"effective_after":  strconv.FormatBool(enabled),
	})

	return nil
}

func (s *Service) ClearOverride(ctx context.Context, tenantID, flagKey string, updatedBy string) error {
	ctx, span := s.tracer.Start(ctx, "flags.Service.ClearOverride")
	defer span.End()

	flag, err := s.storage.GetFeatureFlagByKey(ctx, flagKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			if _, ok := registry.Get(flagKey); !ok {
				return fmt.Errorf("%w: %s", types.ErrUnknownFlag, flagKey)
			}
			// No flag row means no override can exist. Success.
			return nil
		}
		return fmt.Errorf("failed to load flag %q: %w", flagKey, err)
	}

	before, err := s.IsEnabled(ctx, tenantID, flagKey)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteFeatureFlagOverride(ctx, tenantID, flag.ID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to delete flag override: %w", err)
	}

	s.auditor.Record(ctx, updatedBy, audit.ActionFlagOverrideClear, &tenantID, map[string]string{
		"flag_key":         flagKey,
		"effective_before": strconv.FormatBool(before),
		"effective_after":  strconv.FormatBool(flag.EnabledGlobally),
	})

	return nil
}

// ensureFlag loads the global flag row for key, lazily creating it from the
// static registry for keys never toggled before.
func (s *Service) ensureFlag(ctx context.Context, flagKey string) (*types.FeatureFlag, error) {
	flag, err := s.storage.GetFeatureFlagByKey(ctx, flagKey)
	if err == nil {
		return flag, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to load flag %q: %w", flagKey, err)
	}

	capability, ok := registry.Get(flagKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s", types.ErrUnknownFlag, flagKey)
	}

	created, err := s.storage.CreateFeatureFlag(ctx, &types.FeatureFlag{
		Key:             flagKey,
		Name:            capability.Name,
		Description:     capability.Description,
		EnabledGlobally: capability.DefaultEnabled,
	})
	if err != nil {
		// Another request may have created it first.
		if errors.Is(err, storage.ErrDuplicateKey) {
			return s.storage.GetFeatureFlagByKey(ctx, flagKey)
		}
		return nil, fmt.Errorf("failed to create flag %q from registry: %w", flagKey, err)
	}

	return created, nil
}
