// Package texture provides image handles for frames and a cache that
// resolves image files to shared handles.
//
// Two frames belong to the same image exactly when they hold the same
// *Texture. The Cache makes that true for every frame loaded from the
// same path; handles made with New are never shared with the Cache.
package texture
