package game

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/dop251/goja"
)

// ScriptRunner executes a JavaScript pilot script using goja.
// The script must define a function called 'decide' that takes a
// ScriptContext object and returns a ScriptDecision object.
type ScriptRunner struct {
	mu     sync.Mutex
	vm     *goja.Runtime
	decide goja.Callable
}

// NewScriptRunner compiles code and resolves its decide function
func NewScriptRunner(code string) (*ScriptRunner, error) {
	vm := goja.New()

	// Execute the user's script to define the decide function
	if _, err := vm.RunString(code); err != nil {
		return nil, fmt.Errorf("script parse error: %w", err)
	}

	value := vm.Get("decide")
	if value == nil || goja.IsUndefined(value) {
		return nil, fmt.Errorf("script must define a 'decide' function")
	}
	decide, ok := goja.AssertFunction(value)
	if !ok {
		return nil, fmt.Errorf("'decide' must be a function")
	}

	return &ScriptRunner{vm: vm, decide: decide}, nil
}

// Decide calls the script with ctx and parses its answer
func (r *ScriptRunner) Decide(ctx ScriptContext) (ScriptDecision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Serialize context to JSON
	ctxJSON, err := json.Marshal(ctx)
	if err != nil {
		return ScriptDecision{}, fmt.Errorf("failed to serialize context: %w", err)
	}

	// Parse context JSON to JavaScript object
	ctxObj, err := r.vm.RunString(fmt.Sprintf("(%s)", string(ctxJSON)))
	if err != nil {
		return ScriptDecision{}, fmt.Errorf("failed to parse context: %w", err)
	}

	result, err := r.decide(goja.Undefined(), ctxObj)
	if err != nil {
		return ScriptDecision{}, fmt.Errorf("decide function failed: %w", err)
	}
	if result == nil || goja.IsUndefined(result) || goja.IsNull(result) {
		return ScriptDecision{}, fmt.Errorf("decide function returned nothing")
	}

	// Convert result to JSON and then to ScriptDecision
	resultJSON, err := json.Marshal(result.Export())
	if err != nil {
		return ScriptDecision{}, fmt.Errorf("failed to serialize result: %w", err)
	}

	var decision ScriptDecision
	if err := json.Unmarshal(resultJSON, &decision); err != nil {
		return ScriptDecision{}, fmt.Errorf("failed to parse script result: %w (result: %s)", err, string(resultJSON))
	}

	return decision, nil
}
