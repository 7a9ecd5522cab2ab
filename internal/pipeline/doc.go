// Package pipeline provides a framework for executing ranking steps in sequence.
//
// A ranking run passes a model.RankReport through the following stages:
// building the link graph from the corpus, the sampling estimator, the
// iterative estimator, and a comparison of the two estimates. Each stage is
// implemented as a Step that receives the current report and fills in its
// own fields.
//
// Design decision: We use a pipeline pattern instead of direct function calls
// because:
// 1. It allows easy addition/removal of steps without modifying core logic
// 2. It provides consistent error handling and logging across steps
// 3. It supports cancellation via context between steps
//
// Steps run strictly one after another on a single goroutine.
package pipeline
