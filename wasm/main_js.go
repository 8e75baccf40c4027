//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/voxmesh/voxmesh/api"
)

func args2f(args []js.Value, i int, def float32) float32 {
	if len(args) <= i {
		return def
	}
	return float32(args[i].Float())
}

func vxg2stl(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing vxg bytes")
	}
	buf := make([]byte, args[0].Get("length").Int())
	js.CopyBytesToGo(buf, args[0])
	out, err := api.GridToSTL(buf, args2f(args, 1, 1), args2f(args, 2, 0.5))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	uint8arr := js.Global().Get("Uint8Array").New(len(out))
	js.CopyBytesToJS(uint8arr, out)
	return uint8arr
}

func vxg2glb(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf("missing vxg bytes")
	}
	buf := make([]byte, args[0].Get("length").Int())
	js.CopyBytesToGo(buf, args[0])
	out, err := api.GridToGLB(buf, args2f(args, 1, 1), args2f(args, 2, 0.5))
	if err != nil {
		return js.ValueOf(err.Error())
	}
	uint8arr := js.Global().Get("Uint8Array").New(len(out))
	js.CopyBytesToJS(uint8arr, out)
	return uint8arr
}

func main() {
	js.Global().Set("vxg2stl", js.FuncOf(vxg2stl))
	js.Global().Set("vxg2glb", js.FuncOf(vxg2glb))
	select {}
}
