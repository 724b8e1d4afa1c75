package config

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/wangnov/shnote/internal/blockmerge"
)

// absorbLooseKeys removes known top-level keys written by hand outside the
// managed block, so the block can carry them without duplicating a mapping
// key. The caller has already loaded their values.
//
// Content without such keys is returned byte-for-byte. Otherwise the text
// outside the block is re-encoded from its YAML node tree, which keeps
// comments but not custom spacing, and the block itself is dropped for the
// caller to re-apply.
func absorbLooseKeys(content string) (string, []string, error) {
	outside, _, err := blockmerge.Strip(content, BlockMarkers)
	if err != nil {
		return "", nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(outside), &doc); err != nil {
		return "", nil, fmt.Errorf("parsing config: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 || doc.Content[0].Kind != yaml.MappingNode {
		return content, nil, nil
	}

	mapping := doc.Content[0]
	loose := findKnownKeys(extractUserKeys(mapping))
	if len(loose) == 0 {
		return content, nil, nil
	}
	removeKeysFromNode(mapping, loose)

	if len(mapping.Content) == 0 {
		return commentsOnly(&doc, mapping), loose, nil
	}
	out, err := yaml.Marshal(&doc)
	if err != nil {
		return "", nil, fmt.Errorf("encoding config: %w", err)
	}
	return string(out), loose, nil
}

// extractUserKeys returns the top-level keys of a mapping node.
func extractUserKeys(mapping *yaml.Node) []string {
	keys := make([]string, 0, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}
	return keys
}

// findKnownKeys returns the keys present in the schema, sorted.
func findKnownKeys(userKeys []string) []string {
	var known []string
	for _, key := range userKeys {
		if _, ok := KnownKeys[key]; ok {
			known = append(known, key)
		}
	}
	sort.Strings(known)
	return known
}

// removeKeysFromNode deletes the given keys from a mapping node. A removed
// key's head comment moves to the entry that follows it.
func removeKeysFromNode(mapping *yaml.Node, keys []string) {
	drop := make(map[string]bool, len(keys))
	for _, k := range keys {
		drop[k] = true
	}

	kept := mapping.Content[:0]
	carry := ""
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keyNode, valueNode := mapping.Content[i], mapping.Content[i+1]
		if drop[keyNode.Value] {
			carry = joinComments(carry, keyNode.HeadComment)
			continue
		}
		keyNode.HeadComment = joinComments(carry, keyNode.HeadComment)
		carry = ""
		kept = append(kept, keyNode, valueNode)
	}
	mapping.Content = kept
	if carry != "" {
		mapping.FootComment = joinComments(carry, mapping.FootComment)
	}
}

// commentsOnly renders the comments of a document whose mapping became empty.
func commentsOnly(doc, mapping *yaml.Node) string {
	var lines []string
	for _, c := range []string{doc.HeadComment, mapping.HeadComment, mapping.FootComment, doc.FootComment} {
		if c != "" {
			lines = append(lines, c)
		}
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func joinComments(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + "\n" + b
	}
}
