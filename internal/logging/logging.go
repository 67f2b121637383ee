package logging

import "go.uber.org/zap"

// New builds the command-line logger. Verbose enables debug output of
// scheduler internals; otherwise only warnings and errors reach the
// terminal, keeping the drill prompt clean.
func New(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewDevelopmentConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}
