package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"mongo": map[string]any{
			"uri":      "",
			"database": "",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"jwt": "",
		},
		"storage": map[string]any{
			"mediaPath": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "MONGO_URI", want: "mongo.uri"},
		{envKey: "MONGO_DATABASE", want: "mongo.database"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_JWT", want: "secretKey.jwt"},
		{envKey: "STORAGE_MEDIAPATH", want: "storage.mediaPath"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
