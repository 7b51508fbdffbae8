package everytypes

import (
	"fmt"

	"github.com/bytecodealliance/wasmtime-go/v9"
)

// ValidateWasmMatter checks that matter's blob is a well-formed WebAssembly
// module, for matter whose form/element type is Wasm (0xC0). It does not
// instantiate or run the module; it only compiles it far enough to catch
// malformed binaries before they're accepted into storage.
func ValidateWasmMatter(matter Matter) error {
	if ElementType(matter.Form) != ElemWasm {
		return &NotAMatterFormError{Type: ElementType(matter.Form)}
	}
	engine := wasmtime.NewEngine()
	if _, err := wasmtime.NewModule(engine, matter.Blob); err != nil {
		return fmt.Errorf("invalid wasm matter: %w", err)
	}
	return nil
}
