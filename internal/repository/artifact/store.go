package artifact

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"vpnAdvisor/business/recommender"
)

// Store loads the pre-trained model and categorical codecs from disk and
// hands them to the engine. Load is called once at startup (fail fast,
// before any request is served) and again on admin reload; reads are
// lock-protected so reloads are safe under concurrent scoring calls.
type Store struct {
	modelPath  string
	codecsPath string

	mu        sync.RWMutex
	estimator recommender.FitEstimator
	codecs    *recommender.CodecSet
}

var _ recommender.ArtifactRepository = (*Store)(nil)

func NewStore(modelPath, codecsPath string) *Store {
	return &Store{
		modelPath:  modelPath,
		codecsPath: codecsPath,
	}
}

// codecsFile is the on-disk shape of the codec artifact: trained class lists
// per categorical field, in training order.
type codecsFile struct {
	Encryption []string `json:"encryption"`
	Handshake  []string `json:"handshake_encryption"`
	Logging    []string `json:"logging_policy"`
}

func (s *Store) Load() error {
	model, err := loadModel(s.modelPath)
	if err != nil {
		return err
	}

	codecs, err := loadCodecs(s.codecsPath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.estimator = model
	s.codecs = codecs
	s.mu.Unlock()

	return nil
}

func (s *Store) Estimator() recommender.FitEstimator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.estimator
}

func (s *Store) Codecs() *recommender.CodecSet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.codecs
}

func loadModel(path string) (*recommender.LogisticModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open model artifact: %w", err)
	}
	defer f.Close()

	var model recommender.LogisticModel
	if err := gob.NewDecoder(f).Decode(&model); err != nil {
		return nil, fmt.Errorf("failed to decode model artifact: %w", err)
	}
	if len(model.Coef) != recommender.FeatureDim {
		return nil, fmt.Errorf("model artifact has %d coefficients, want %d",
			len(model.Coef), recommender.FeatureDim)
	}

	return &model, nil
}

func loadCodecs(path string) (*recommender.CodecSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read codec artifact: %w", err)
	}

	var file codecsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode codec artifact: %w", err)
	}
	if len(file.Encryption) == 0 || len(file.Handshake) == 0 || len(file.Logging) == 0 {
		return nil, fmt.Errorf("codec artifact is missing trained classes")
	}

	return &recommender.CodecSet{
		Encryption: recommender.NewLabelCodec("encryption", file.Encryption),
		Handshake:  recommender.NewLabelCodec("handshake_encryption", file.Handshake),
		Logging:    recommender.NewLabelCodec("logging_policy", file.Logging),
	}, nil
}
