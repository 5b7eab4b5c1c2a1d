// Package ml loads the sentiment model artifacts.
//
// Artifacts are JSON exports of a fitted TF-IDF vectorizer and a linear
// classifier. They are read once, validated against each other, and are
// immutable afterwards, so the returned values may be shared by concurrent
// requests without locking.
//
// Classifier kinds are resolved through a Registry:
//
//	reg := ml.NewRegistry()
//	ml.RegisterDefaults(reg)
//	models, err := ml.Load(vectorizerPath, modelPath, reg)
package ml
