// Package hcl reads HCL solution descriptions into the format-agnostic
// config.Solution model.
//
// A description is one `.hcl` file or a directory tree of them; blocks from
// all files are merged. Three block types are recognised:
//
//	variable "platform" { default = "Any CPU" }
//	solution "Example" { configurations = ["Debug|${var.platform}"] }
//	project "Core" {
//	  id         = "{6F5D8A3E-2B1C-4D5E-9F00-112233445566}"
//	  build_file = "src/Core/Core.csproj"
//	  depends_on = ["Util"]
//	  configuration "Debug|Any CPU" {
//	    target = "Debug|${var.platform}"
//	    build  = true
//	  }
//	}
//
// Variables are evaluated first and exposed as `var.<name>` to every other
// attribute expression.
package hcl
