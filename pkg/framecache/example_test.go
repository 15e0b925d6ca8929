package framecache_test

import (
	"context"
	"fmt"

	"github.com/jmgilman/go/fs/billy"

	"github.com/bft-labs/framecache/pkg/framecache"
)

const exampleAtlas = `{
  "frames": {
    "coin_0": {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}},
    "coin_1": {"frame": {"x": 16, "y": 0, "w": 16, "h": 16}},
    "coin_2": {"frame": {"w": 16, "h": 16}}
  },
  "meta": {"image": "coins.png"}
}`

func ExampleCache_LoadFile() {
	fsys := billy.NewMemory()
	_ = fsys.WriteFile("coins.json", []byte(exampleAtlas), 0o644)
	_ = fsys.WriteFile("coins.png", []byte{0x89, 'P', 'N', 'G'}, 0o644)

	cache, err := framecache.New(framecache.DefaultConfig(), framecache.WithFilesystem(fsys))
	if err != nil {
		fmt.Println(err)
		return
	}

	res, err := cache.LoadFile(context.Background(), "coins.json")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("added:", res.Added, "texture:", res.Texture.Path())
	for _, w := range res.Warnings {
		fmt.Println("skipped:", w.Name)
	}

	frame, _ := cache.GetFrame("coin_1")
	fmt.Println(frame.Rect())
	// Output:
	// added: 2 texture: coins.png
	// skipped: coin_2
	// {{16,0},{16,16}}
}

func ExampleCache_RemoveUnused() {
	cache, _ := framecache.New(framecache.DefaultConfig(), framecache.WithFilesystem(billy.NewMemory()))
	tex := framecache.NewTexture("ui")

	res, _ := cache.LoadContent(context.Background(), []byte(exampleAtlas), tex)
	fmt.Println("loaded:", res.Added)

	held, _ := cache.Acquire("coin_0")
	fmt.Println("removed:", cache.RemoveUnused())
	fmt.Println("left:", cache.Names())

	held.Release()
	fmt.Println("removed:", cache.RemoveUnused())
	// Output:
	// loaded: 2
	// removed: 1
	// left: [coin_0]
	// removed: 1
}
