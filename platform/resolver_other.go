// SPDX-License-Identifier: Unlicense OR MIT

//go:build !windows && !linux && !freebsd && !darwin

package platform

import "github.com/DDholder/opentk/binding"

// No dynamic loader on this platform; only the dummy backend works.

func glResolver() binding.Resolver { return nullResolver }

func sdlResolver() binding.Resolver { return nullResolver }
