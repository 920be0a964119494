// Package snippets provides the header and footer snippets wrapped around a
// problem's starter code, and assembles the final source file.
//
// # Loader Architecture
//
//	Loader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in snippets (go:embed)
//	    ├── FilesystemLoader  - snippets from a user directory
//	    └── Resolver          - custom-first with embedded fallback
//
// # Directory Structure
//
// A snippet directory holds one header and one footer per language, named by
// the language's file extension:
//
//	{dir}/
//	├── header.cpp
//	├── footer.cpp
//	├── header.py
//	└── footer.py
//
// Language names are validated so they cannot escape the directory.
package snippets
