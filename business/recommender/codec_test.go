//go:build !integration

package recommender

import "testing"

func TestLabelCodecRoundTrip(t *testing.T) {
	classes := []string{"AES-128", "AES-256", "ChaCha20"}
	codec := NewLabelCodec("encryption", classes)

	for _, raw := range classes {
		code := codec.Encode(raw)
		if code == UnknownCode {
			t.Fatalf("trained value %q encoded to UnknownCode", raw)
		}
		if got := codec.Decode(code); got != raw {
			t.Errorf("decode(encode(%q)) = %q", raw, got)
		}
	}
}

func TestLabelCodecEncodeIsTotal(t *testing.T) {
	codec := NewLabelCodec("encryption", []string{"AES-256"})

	for _, raw := range []string{"", "Blowfish", "aes-256", "AES-256 "} {
		if got := codec.Encode(raw); got != UnknownCode {
			t.Errorf("Encode(%q) = %d, want UnknownCode", raw, got)
		}
	}
}

func TestLabelCodecDecodeUnknown(t *testing.T) {
	codec := NewLabelCodec("logging_policy", []string{"no_logs", "partial_logs"})

	for _, code := range []int{UnknownCode, 2, 100} {
		if got := codec.Decode(code); got != UnknownLabel {
			t.Errorf("Decode(%d) = %q, want %q", code, got, UnknownLabel)
		}
	}
}

func TestLabelCodecEncodeOrDefault(t *testing.T) {
	codec := NewLabelCodec("encryption", []string{"AES-128", "AES-256"})

	if got := codec.EncodeOrDefault("AES-128", "AES-256"); got != 0 {
		t.Errorf("trained value should keep its own code, got %d", got)
	}
	if got := codec.EncodeOrDefault("Blowfish", "AES-256"); got != 1 {
		t.Errorf("unseen value should fall back to default code, got %d", got)
	}
	if got := codec.EncodeOrDefault("Blowfish", "also-unseen"); got != UnknownCode {
		t.Errorf("unseen default should yield UnknownCode, got %d", got)
	}
}

func TestCodecSetComplete(t *testing.T) {
	full := &CodecSet{
		Encryption: NewLabelCodec("encryption", []string{"AES-256"}),
		Handshake:  NewLabelCodec("handshake_encryption", []string{"RSA-4096"}),
		Logging:    NewLabelCodec("logging_policy", []string{"no_logs"}),
	}
	if !full.Complete() {
		t.Error("full set reported incomplete")
	}

	var nilSet *CodecSet
	if nilSet.Complete() {
		t.Error("nil set reported complete")
	}

	partial := &CodecSet{Encryption: full.Encryption}
	if partial.Complete() {
		t.Error("partial set reported complete")
	}
}
