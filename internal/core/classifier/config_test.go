package classifier

import (
	"os"
	"path/filepath"
	"testing"

	"spamjar/internal/platform/config"
	"spamjar/internal/platform/testkit"
)

func classifierConf() config.Conf { return config.New().Prefix("CORE_CLASSIFIER_") }

func TestFromConfig_DefaultIsConstantFalse(t *testing.T) {
	testkit.Env(t, map[string]string{"CORE_CLASSIFIER_KIND": "", "CORE_CLASSIFIER_CONSTANT": ""})

	c, err := FromConfig(classifierConf())
	if err != nil {
		t.Fatal(err)
	}
	info := c.Info()
	if info.Kind != KindConstant || info.Threshold != DefaultThreshold || info.Detail != "verdict=false" {
		t.Fatalf("info = %+v", info)
	}
}

func TestFromConfig_Kinds(t *testing.T) {
	dir := t.TempDir()
	model := filepath.Join(dir, "model.json")
	if err := os.WriteFile(model, []byte(testModel), 0o600); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		env  map[string]string
		kind Kind
	}{
		{map[string]string{"CORE_CLASSIFIER_KIND": "LENGTH", "CORE_CLASSIFIER_MAX_LEN": "10"}, KindLength},
		{map[string]string{"CORE_CLASSIFIER_KIND": "model", "CORE_CLASSIFIER_MODEL_PATH": model}, KindModel},
		{map[string]string{"CORE_CLASSIFIER_KIND": "remote", "CORE_CLASSIFIER_REMOTE_URL": "http://scorer.local/score"}, KindRemote},
		{map[string]string{"CORE_CLASSIFIER_KIND": "constant", "CORE_CLASSIFIER_CONSTANT": "true"}, KindConstant},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			testkit.Env(t, tc.env)
			c, err := FromConfig(classifierConf())
			if err != nil {
				t.Fatal(err)
			}
			if c.Info().Kind != tc.kind {
				t.Fatalf("kind = %v, want %v", c.Info().Kind, tc.kind)
			}
		})
	}
}

func TestFromConfig_Failures(t *testing.T) {
	t.Run("unknown kind panics", func(t *testing.T) {
		testkit.Env(t, map[string]string{"CORE_CLASSIFIER_KIND": "xgboost"})
		testkit.MustPanic(t, func() { _, _ = FromConfig(classifierConf()) })
	})
	t.Run("missing model file", func(t *testing.T) {
		testkit.Env(t, map[string]string{
			"CORE_CLASSIFIER_KIND":       "model",
			"CORE_CLASSIFIER_MODEL_PATH": filepath.Join(t.TempDir(), "nope.json"),
		})
		if _, err := FromConfig(classifierConf()); err == nil {
			t.Fatal("expected error")
		}
	})
	t.Run("remote without url", func(t *testing.T) {
		testkit.Env(t, map[string]string{"CORE_CLASSIFIER_KIND": "remote", "CORE_CLASSIFIER_REMOTE_URL": ""})
		if _, err := FromConfig(classifierConf()); err == nil {
			t.Fatal("expected error")
		}
	})
}
