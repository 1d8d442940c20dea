// SPDX-License-Identifier: Unlicense OR MIT

// Package gl declares the capability surfaces for the OpenGL function
// namespaces this module binds: the GL core-extension entry points and
// the WGL and GLX context-creation extensions.
package gl

type (
	Enum uint
)

const (
	ARRAY_BUFFER           = 0x8892
	BLEND                  = 0xbe2
	COLOR_BUFFER_BIT       = 0x4000
	COMPILE_STATUS         = 0x8b81
	DEPTH_BUFFER_BIT       = 0x100
	DEPTH_TEST             = 0xb71
	DRAW_FRAMEBUFFER       = 0x8CA9
	ELEMENT_ARRAY_BUFFER   = 0x8893
	EXTENSIONS             = 0x1f03
	FALSE                  = 0
	FRAGMENT_SHADER        = 0x8b30
	FRAMEBUFFER            = 0x8d40
	FRAMEBUFFER_BINDING    = 0x8ca6
	FRAMEBUFFER_COMPLETE   = 0x8cd5
	INFO_LOG_LENGTH        = 0x8B84
	LINK_STATUS            = 0x8b82
	MAX_SAMPLES            = 0x8D57
	MULTISAMPLE            = 0x809D
	NO_ERROR               = 0x0
	NUM_EXTENSIONS         = 0x821D
	QUERY_RESULT           = 0x8866
	QUERY_RESULT_AVAILABLE = 0x8867
	READ_FRAMEBUFFER       = 0x8ca8
	RENDERBUFFER           = 0x8d41
	RENDERER               = 0x1F01
	SAMPLE_COVERAGE        = 0x80A0
	SAMPLES                = 0x80A9
	STENCIL_BUFFER_BIT     = 0x00000400
	STEREO                 = 0xC33
	TRUE                   = 1
	VENDOR                 = 0x1F00
	VERSION                = 0x1f02
	VERTEX_SHADER          = 0x8b31

	// EXT_disjoint_timer_query
	TIME_ELAPSED_EXT = 0x88BF
	GPU_DISJOINT_EXT = 0x8FBB
)

// WGL_ARB_pixel_format and WGL_ARB_create_context attributes.
const (
	WGL_DRAW_TO_WINDOW_ARB        = 0x2001
	WGL_ACCELERATION_ARB          = 0x2003
	WGL_SUPPORT_OPENGL_ARB        = 0x2010
	WGL_DOUBLE_BUFFER_ARB         = 0x2011
	WGL_STEREO_ARB                = 0x2012
	WGL_PIXEL_TYPE_ARB            = 0x2013
	WGL_COLOR_BITS_ARB            = 0x2014
	WGL_ACCUM_BITS_ARB            = 0x201D
	WGL_DEPTH_BITS_ARB            = 0x2022
	WGL_STENCIL_BITS_ARB          = 0x2023
	WGL_FULL_ACCELERATION_ARB     = 0x2027
	WGL_TYPE_RGBA_ARB             = 0x202B
	WGL_SAMPLE_BUFFERS_ARB        = 0x2041
	WGL_SAMPLES_ARB               = 0x2042
	WGL_CONTEXT_MAJOR_VERSION_ARB = 0x2091
	WGL_CONTEXT_MINOR_VERSION_ARB = 0x2092
	WGL_CONTEXT_FLAGS_ARB         = 0x2094
	WGL_CONTEXT_PROFILE_MASK_ARB  = 0x9126
)

// GLX visual and FBConfig attributes.
const (
	GLX_DOUBLEBUFFER              = 5
	GLX_STEREO                    = 6
	GLX_RED_SIZE                  = 8
	GLX_GREEN_SIZE                = 9
	GLX_BLUE_SIZE                 = 10
	GLX_ALPHA_SIZE                = 11
	GLX_DEPTH_SIZE                = 12
	GLX_STENCIL_SIZE              = 13
	GLX_ACCUM_RED_SIZE            = 14
	GLX_SAMPLE_BUFFERS            = 100000
	GLX_SAMPLES                   = 100001
	GLX_CONTEXT_MAJOR_VERSION_ARB = 0x2091
	GLX_CONTEXT_MINOR_VERSION_ARB = 0x2092
	GLX_CONTEXT_PROFILE_MASK_ARB  = 0x9126
)
