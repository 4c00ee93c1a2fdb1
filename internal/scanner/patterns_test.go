//go:build unit

package scanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depcheck/internal/scanner"
)

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func TestNormalizePackageName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		want   string
	}{
		{name: "should keep a bare package name", target: "express", want: "express"},
		{name: "should drop an unscoped subpath", target: "pkg/deep/path", want: "pkg"},
		{name: "should keep scope and name of a scoped subpath", target: "@scope/pkg/deep/path", want: "@scope/pkg"},
		{name: "should keep a scoped package", target: "@types/node", want: "@types/node"},
		{name: "should keep a lone scope unchanged", target: "@scope", want: "@scope"},
		{name: "should ignore a relative target", target: "./utils", want: ""},
		{name: "should ignore a parent relative target", target: "../lib/a", want: ""},
		{name: "should ignore an absolute target", target: "/abs/path", want: ""},
		{name: "should keep node builtins as written", target: "fs", want: "fs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given / when
			got := scanner.NormalizePackageName(tt.target)

			// then
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPackageReferences(t *testing.T) {
	t.Parallel()

	t.Run("should capture every static import binding form", func(t *testing.T) {
		t.Parallel()

		// given
		content := `
import express from 'express';
import { debounce, throttle } from "lodash";
import * as path from 'path-browserify';
import 'reflect-metadata';
import React, { useState } from 'react';
`

		// when
		refs := scanner.ExtractPackageReferences(content)

		// then
		assert.ElementsMatch(t,
			[]string{"express", "lodash", "path-browserify", "reflect-metadata", "react"},
			keys(refs),
		)
	})

	t.Run("should capture require calls", func(t *testing.T) {
		t.Parallel()

		// given
		content := "const x = require('fs-extra');\nconst y = require (\"axios\");"

		// when
		refs := scanner.ExtractPackageReferences(content)

		// then
		assert.ElementsMatch(t, []string{"fs-extra", "axios"}, keys(refs))
	})

	t.Run("should capture dynamic imports", func(t *testing.T) {
		t.Parallel()

		// given
		content := "const mod = await import('chart.js');\nimport(\"@sentry/browser/esm\").then(init);"

		// when
		refs := scanner.ExtractPackageReferences(content)

		// then
		assert.ElementsMatch(t, []string{"chart.js", "@sentry/browser"}, keys(refs))
	})

	t.Run("should normalize subpath and scoped targets", func(t *testing.T) {
		t.Parallel()

		// given
		content := "import debounce from 'lodash/debounce';\nimport { x } from '@scope/pkg/deep/path';"

		// when
		refs := scanner.ExtractPackageReferences(content)

		// then
		assert.ElementsMatch(t, []string{"lodash", "@scope/pkg"}, keys(refs))
	})

	t.Run("should never report relative or absolute targets", func(t *testing.T) {
		t.Parallel()

		// given
		content := `
import utils from './utils';
import { a } from '../shared/a';
const b = require('/opt/lib/b');
const c = import('./lazy');
`

		// when
		refs := scanner.ExtractPackageReferences(content)

		// then
		assert.Empty(t, refs)
	})

	t.Run("should deduplicate repeated references", func(t *testing.T) {
		t.Parallel()

		// given
		content := "import a from 'react';\nconst b = require('react');\nimport('react/jsx-runtime');"

		// when
		refs := scanner.ExtractPackageReferences(content)

		// then
		assert.Equal(t, []string{"react"}, keys(refs))
	})

	t.Run("should not resolve computed targets", func(t *testing.T) {
		t.Parallel()

		// given
		content := "const name = 'left-pad';\nrequire(name);\nrequire('left-' + 'pad');"

		// when
		refs := scanner.ExtractPackageReferences(content)

		// then
		assert.Empty(t, refs)
	})

	t.Run("should return an empty set for empty content", func(t *testing.T) {
		t.Parallel()

		// given / when
		refs := scanner.ExtractPackageReferences("")

		// then
		require.NotNil(t, refs)
		assert.Empty(t, refs)
	})
}

func TestPatterns(t *testing.T) {
	t.Parallel()

	t.Run("should expose the three pattern kinds in a fixed order", func(t *testing.T) {
		t.Parallel()

		// given / when
		patterns := scanner.Patterns()

		// then
		require.Len(t, patterns, 3)
		assert.Equal(t, scanner.StaticImport, patterns[0].Kind)
		assert.Equal(t, scanner.Require, patterns[1].Kind)
		assert.Equal(t, scanner.DynamicImport, patterns[2].Kind)
	})

	t.Run("should match each form only with its own pattern", func(t *testing.T) {
		t.Parallel()

		// given
		patterns := scanner.Patterns()

		// when / then
		assert.True(t, patterns[1].Regexp.MatchString("require('a')"))
		assert.False(t, patterns[1].Regexp.MatchString("import('a')"))
		assert.True(t, patterns[2].Regexp.MatchString("import('a')"))
		assert.False(t, patterns[2].Regexp.MatchString("require('a')"))
	})
}
