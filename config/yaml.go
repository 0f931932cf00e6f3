// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package config

import (
	"cloudeng.io/cmdutil/cmdyaml"
	"gopkg.in/yaml.v3"
)

// decodeStrict decodes the yaml in spec into cfg, reporting an error for
// unknown fields. An empty document, or one containing only comments,
// leaves cfg unchanged.
func decodeStrict(spec []byte, cfg any) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(spec, &doc); err == nil && len(doc.Content) == 0 {
		return nil
	}
	return cmdyaml.ParseConfigStrict(spec, cfg)
}
