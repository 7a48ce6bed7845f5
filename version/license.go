/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package version

// License identifies the open-source license a binary is distributed under.
type License uint8

const (
	License_Unknown License = iota
	License_MIT
	License_Apache_v2
	License_GNU_GPL_v3
	License_GNU_Lesser_GPL_v3
	License_GNU_Affero_GPL_v3
	License_Mozilla_PL_v2
	License_Unlicense
	License_SIL_Open_Font_1_1
	License_Creative_Common_Zero_v1
	License_Creative_Common_Attribution_v4_int
	License_Creative_Common_Attribution_Share_Alike_v4_int
)

type licenseInfo struct {
	name    string
	boiler  string
	legal   string
}

var licenseTable = map[License]licenseInfo{
	License_Unknown: {
		name:   "Unknown License",
		boiler: "No license declared.",
		legal:  "No license declared. All rights reserved by the author.",
	},
	License_MIT: {
		name:   "MIT License",
		boiler: "Permission is hereby granted, free of charge, to any person obtaining a copy of this software to deal in the Software without restriction.",
		legal:  "THE SOFTWARE IS PROVIDED \"AS IS\", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED.",
	},
	License_Apache_v2: {
		name:   "Apache License, Version 2.0",
		boiler: "Licensed under the Apache License, Version 2.0 (the \"License\"); you may not use this file except in compliance with the License.",
		legal:  "Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an \"AS IS\" BASIS.",
	},
	License_GNU_GPL_v3: {
		name:   "GNU GENERAL PUBLIC LICENSE Version 3",
		boiler: "This program is free software: you can redistribute it and/or modify it under the terms of the GNU General Public License.",
		legal:  "This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY.",
	},
	License_GNU_Lesser_GPL_v3: {
		name:   "GNU LESSER GENERAL PUBLIC LICENSE Version 3",
		boiler: "This program is free software: you can redistribute it and/or modify it under the terms of the GNU Lesser General Public License.",
		legal:  "This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY.",
	},
	License_GNU_Affero_GPL_v3: {
		name:   "GNU AFFERO GENERAL PUBLIC LICENSE Version 3",
		boiler: "This program is free software: you can redistribute it and/or modify it under the terms of the GNU Affero General Public License.",
		legal:  "This program is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY.",
	},
	License_Mozilla_PL_v2: {
		name:   "Mozilla Public License 2.0",
		boiler: "This Source Code Form is subject to the terms of the Mozilla Public License, v. 2.0.",
		legal:  "Software distributed under the License is distributed on an \"AS IS\" basis.",
	},
	License_Unlicense: {
		name:   "The Unlicense",
		boiler: "This is free and unencumbered software released into the public domain.",
		legal:  "THE SOFTWARE IS PROVIDED \"AS IS\", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED.",
	},
	License_SIL_Open_Font_1_1: {
		name:   "SIL Open Font License 1.1",
		boiler: "This Font Software is licensed under the SIL Open Font License, Version 1.1.",
		legal:  "THE SOFTWARE IS PROVIDED \"AS IS\", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR IMPLIED.",
	},
	License_Creative_Common_Zero_v1: {
		name:   "CC0 1.0 Universal",
		boiler: "The person who associated a work with this deed has dedicated the work to the public domain.",
		legal:  "The work is provided AS-IS, without warranties of any kind.",
	},
	License_Creative_Common_Attribution_v4_int: {
		name:   "Creative Commons Attribution 4.0 International",
		boiler: "You are free to share and adapt this material for any purpose, provided you give appropriate credit.",
		legal:  "The material is offered AS-IS, without warranties of any kind.",
	},
	License_Creative_Common_Attribution_Share_Alike_v4_int: {
		name:   "Creative Commons Attribution-ShareAlike 4.0 International",
		boiler: "You are free to share and adapt this material, provided you give appropriate credit and distribute derivatives under the same license.",
		legal:  "The material is offered AS-IS, without warranties of any kind.",
	},
}

func lookupLicense(l License) licenseInfo {
	if v, ok := licenseTable[l]; ok {
		return v
	}
	return licenseTable[License_Unknown]
}
