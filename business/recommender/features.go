package recommender

import "vpnAdvisor/domain"

// FeatureDim is the width of the classifier input. The order below is
// load-bearing: the classifier was trained on exactly this layout and
// swapping entries silently corrupts every estimate.
//
//	[speed, price, trial_flag, encryption_code, handshake_code, logging_code, max_devices]
const FeatureDim = 7

// encodedPref is a UserPreference with its categorical fields resolved to
// trained codes. Built once per scoring pass.
type encodedPref struct {
	pref           domain.UserPreference
	encryptionCode int
	handshakeCode  int
	loggingCode    int
	trialFlag      float64
}

func encodePreference(pref domain.UserPreference, codecs *CodecSet, cfg Config) encodedPref {
	trial := 0.0
	if pref.TrialRequired {
		trial = 1.0
	}
	return encodedPref{
		pref:           pref,
		encryptionCode: codecs.Encryption.EncodeOrDefault(pref.Encryption, cfg.DefaultEncryption),
		handshakeCode:  codecs.Handshake.EncodeOrDefault(pref.HandshakeEncryption, cfg.DefaultHandshake),
		loggingCode:    codecs.Logging.EncodeOrDefault(pref.LoggingPolicy, cfg.DefaultLogging),
		trialFlag:      trial,
	}
}

// encodedVPN caches a candidate's categorical codes for the pass.
type encodedVPN struct {
	vpn            domain.VPNService
	encryptionCode int
	handshakeCode  int
	loggingCode    int
}

func encodeCandidate(vpn domain.VPNService, codecs *CodecSet) encodedVPN {
	return encodedVPN{
		vpn:            vpn,
		encryptionCode: codecs.Encryption.Encode(vpn.Encryption),
		handshakeCode:  codecs.Handshake.Encode(vpn.HandshakeEncryption),
		loggingCode:    codecs.Logging.Encode(vpn.LoggingPolicy),
	}
}

// buildFeatureVector assembles the classifier input for one (user, candidate)
// pair. The numeric fields use the midpoint of the user's and the candidate's
// values: the classifier was trained on pairwise compatibility combinations,
// not absolute candidate attributes.
func buildFeatureVector(u encodedPref, c encodedVPN) [FeatureDim]float64 {
	var x [FeatureDim]float64
	x[0] = (u.pref.Speed + c.vpn.Speed) / 2
	x[1] = (u.pref.Price + c.vpn.Price) / 2
	x[2] = u.trialFlag
	x[3] = float64(c.encryptionCode)
	x[4] = float64(c.handshakeCode)
	x[5] = float64(c.loggingCode)
	x[6] = (float64(u.pref.MaxDevices) + float64(c.vpn.MaxDevices)) / 2
	return x
}

func featuresToSlice(fv [FeatureDim]float64) []float64 {
	out := make([]float64, FeatureDim)
	for i := 0; i < FeatureDim; i++ {
		out[i] = fv[i]
	}
	return out
}
