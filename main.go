//go:build !(js && wasm)

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/voxmesh/voxmesh/utils"
)

func usage() {
	fmt.Println("Usage: voxmeshtool <command> [args]")
	fmt.Println("Commands:")
	fmt.Println("  iso2stl input.vxg output.stl <cellSize> <level>   (closed isosurface of a scalar grid -> binary STL)")
	fmt.Println("  quads2stl input.vxg output.stl <cellSize>         (boundary quads of an occupancy grid -> binary STL)")
	fmt.Println("  vxg2glb input.vxg output.glb <cellSize> [level]   (either grid kind -> GLB, flat normals)")
	fmt.Println("  gensphere output.vxg <dim>                        (dim^3 center-distance scalar volume)")
	fmt.Println("  gennoise output.vxg <dim> <percentage>            (dim^3 random occupancy volume)")
}

func parseF(s string) float32 {
	v, err := strconv.ParseFloat(s, 32)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	return float32(v)
}

func parseI(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	return v
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "iso2stl":
		if len(os.Args) != 6 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunIso2STL(os.Args[2], os.Args[3], parseF(os.Args[4]), parseF(os.Args[5])); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "quads2stl":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunQuads2STL(os.Args[2], os.Args[3], parseF(os.Args[4])); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "vxg2glb":
		if len(os.Args) != 5 && len(os.Args) != 6 {
			usage()
			os.Exit(1)
		}
		level := float32(0.5)
		if len(os.Args) == 6 {
			level = parseF(os.Args[5])
		}
		if err := utils.RunVXG2GLB(os.Args[2], os.Args[3], parseF(os.Args[4]), level); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "gensphere":
		if len(os.Args) != 4 {
			usage()
			os.Exit(1)
		}
		if err := utils.RunGenSphere(os.Args[2], parseI(os.Args[3])); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	case "gennoise":
		if len(os.Args) != 5 {
			usage()
			os.Exit(1)
		}
		pct, err := strconv.ParseFloat(os.Args[4], 64)
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
		if err := utils.RunGenNoise(os.Args[2], parseI(os.Args[3]), pct); err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}
	default:
		usage()
		os.Exit(1)
	}
}
