// Package atlas parses texture atlas descriptors.
//
// A descriptor lists named frames inside one image. The cocos2d property
// list layout is the reference: a "frames" dictionary and an optional
// "metadata" dictionary carrying "format" (0 to 3) and "textureFileName".
// The same layout is accepted in JSON, YAML and TOML, and TexturePacker's
// JSON hash and array exports are understood as well.
//
// Parsing is split in two steps. [Parse] turns bytes into a [Document] of
// raw [Record]s and fails only when the whole document is unusable.
// [Record.Spec] then converts each record into frame geometry, so one bad
// record never spoils the rest.
//
// # Usage
//
//	loader := atlas.NewLoader(billy.NewLocal())
//	doc, err := loader.LoadFile(ctx, "/assets/hero.plist")
//	if err != nil {
//	    return err
//	}
//	for _, rec := range doc.Records {
//	    spec, err := rec.Spec(doc.Format)
//	    ...
//	}
package atlas
