package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("OWNER_TG_ID", "")
	t.Setenv("POLL_TIMEOUT_SECONDS", "")
	t.Setenv("COMMAND_PREFIX", "")
	t.Setenv("MONGO_URL", "")
	t.Setenv("MONGO_DATABASE", "")
	t.Setenv("LEDGER_MODE", "")
	t.Setenv("AUDIT_CHANNEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.PollTimeoutSeconds != 30 {
		t.Fatalf("expected default poll timeout 30, got %d", cfg.PollTimeoutSeconds)
	}
	if cfg.CommandPrefix != "/" {
		t.Fatalf("expected default prefix /, got %q", cfg.CommandPrefix)
	}
	if cfg.MongoDatabase != "guardian" {
		t.Fatalf("expected default mongo database guardian, got %q", cfg.MongoDatabase)
	}
	if cfg.LedgerMode != "dual" {
		t.Fatalf("expected default ledger mode dual, got %q", cfg.LedgerMode)
	}
	if cfg.AuditChannel != "message-logs" {
		t.Fatalf("expected default audit channel message-logs, got %q", cfg.AuditChannel)
	}
	if cfg.IsMongoEnabled() {
		t.Fatal("expected mongo disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("OWNER_TG_ID", "999")
	t.Setenv("POLL_TIMEOUT_SECONDS", "10")
	t.Setenv("COMMAND_PREFIX", "!")
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("LEDGER_MODE", "mongo")
	t.Setenv("AUDIT_CHANNEL", "mod-audit")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.OwnerTGID != 999 {
		t.Fatalf("expected owner 999, got %d", cfg.OwnerTGID)
	}
	if cfg.PollTimeoutSeconds != 10 {
		t.Fatalf("expected poll timeout 10, got %d", cfg.PollTimeoutSeconds)
	}
	if cfg.CommandPrefix != "!" {
		t.Fatalf("expected prefix !, got %q", cfg.CommandPrefix)
	}
	if !cfg.IsMongoEnabled() {
		t.Fatal("expected mongo enabled")
	}
	if cfg.AuditChannel != "mod-audit" {
		t.Fatalf("expected audit channel mod-audit, got %q", cfg.AuditChannel)
	}
}

func TestLoadInvalidOwnerID(t *testing.T) {
	t.Setenv("OWNER_TG_ID", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadNonPositivePollTimeout(t *testing.T) {
	t.Setenv("OWNER_TG_ID", "")
	t.Setenv("POLL_TIMEOUT_SECONDS", "-5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PollTimeoutSeconds != 30 {
		t.Fatalf("expected fallback poll timeout 30, got %d", cfg.PollTimeoutSeconds)
	}
}
