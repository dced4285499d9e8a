package textspn

import (
	"SPNBox"
)

// The bigram substitution tables are a frozen random permutation of
// [0,676) and its exact inverse. They were drawn once by the SHAKE128
// Fisher-Yates shuffle in sboxgen.go (seed recorded there) and ship as
// literal data: any existing ciphertext depends on these exact values.
// init re-checks the pairing invariant before the cipher can be used.

var bigramSBox = SPNBox.SBox{
	372, 478, 455, 572, 578, 290, 45, 103, 589, 4, 507, 197, 398,
	655, 80, 110, 216, 553, 15, 148, 266, 217, 324, 563, 474, 370,
	496, 62, 302, 464, 192, 12, 524, 96, 363, 645, 602, 364, 445,
	427, 489, 307, 147, 63, 322, 495, 389, 367, 256, 274, 617, 643,
	130, 264, 84, 122, 76, 500, 575, 241, 213, 139, 93, 179, 28,
	186, 315, 243, 674, 360, 664, 90, 508, 156, 340, 404, 169, 354,
	566, 561, 567, 486, 573, 249, 238, 530, 536, 341, 236, 538, 624,
	609, 565, 582, 527, 281, 605, 13, 350, 534, 78, 437, 615, 234,
	142, 300, 668, 21, 642, 20, 77, 352, 118, 494, 546, 297, 632,
	611, 318, 223, 544, 250, 289, 417, 100, 25, 358, 74, 141, 548,
	433, 440, 287, 385, 70, 124, 85, 348, 312, 492, 601, 161, 380,
	225, 112, 52, 587, 282, 36, 373, 313, 149, 519, 263, 402, 423,
	375, 523, 204, 48, 487, 660, 506, 460, 472, 87, 623, 276, 541,
	479, 629, 591, 153, 625, 237, 654, 456, 181, 231, 133, 451, 11,
	41, 462, 288, 303, 499, 413, 199, 247, 459, 627, 599, 202, 392,
	407, 120, 595, 476, 672, 184, 543, 151, 590, 332, 272, 317, 79,
	114, 557, 435, 369, 123, 222, 545, 279, 311, 155, 463, 399, 431,
	650, 511, 200, 520, 33, 547, 422, 251, 662, 275, 652, 337, 212,
	621, 537, 387, 218, 219, 351, 518, 467, 10, 597, 357, 210, 183,
	299, 386, 321, 164, 384, 608, 53, 675, 226, 419, 633, 525, 160,
	425, 501, 446, 198, 128, 66, 515, 175, 95, 17, 636, 262, 301,
	75, 132, 228, 137, 206, 64, 428, 521, 454, 83, 273, 347, 412,
	86, 111, 442, 505, 630, 196, 55, 261, 215, 294, 503, 355, 531,
	381, 252, 320, 286, 329, 471, 361, 649, 393, 138, 203, 201, 177,
	220, 113, 628, 140, 568, 257, 554, 334, 335, 416, 144, 230, 119,
	410, 224, 328, 121, 248, 498, 378, 115, 637, 43, 426, 39, 661,
	145, 409, 94, 513, 227, 362, 270, 170, 374, 173, 453, 365, 349,
	569, 258, 283, 178, 376, 394, 356, 535, 101, 619, 588, 559, 157,
	325, 245, 136, 166, 195, 339, 441, 429, 246, 8, 221, 580, 330,
	405, 604, 653, 436, 482, 40, 635, 651, 469, 415, 167, 509, 598,
	647, 278, 639, 280, 3, 638, 483, 6, 214, 539, 143, 209, 34,
	1, 466, 475, 400, 461, 239, 669, 102, 612, 656, 190, 336, 663,
	91, 528, 207, 61, 667, 108, 594, 314, 640, 32, 174, 659, 116,
	316, 646, 585, 576, 333, 117, 165, 134, 620, 504, 490, 452, 556,
	480, 450, 211, 97, 98, 670, 319, 666, 359, 592, 58, 89, 397,
	16, 9, 60, 244, 0, 465, 338, 497, 56, 2, 259, 438, 323,
	331, 71, 72, 533, 491, 188, 126, 191, 68, 253, 571, 309, 194,
	390, 610, 59, 552, 577, 47, 109, 285, 388, 49, 522, 562, 193,
	69, 232, 308, 82, 406, 379, 641, 30, 368, 526, 502, 377, 295,
	353, 106, 158, 516, 549, 484, 622, 22, 305, 396, 284, 343, 606,
	583, 493, 189, 159, 27, 292, 205, 235, 551, 51, 38, 366, 46,
	421, 564, 411, 50, 558, 180, 420, 665, 104, 99, 269, 414, 172,
	176, 383, 24, 326, 67, 26, 185, 473, 187, 584, 37, 131, 327,
	408, 304, 631, 29, 163, 560, 673, 447, 418, 434, 162, 135, 391,
	255, 150, 657, 542, 449, 457, 7, 129, 468, 439, 532, 634, 298,
	57, 152, 18, 65, 671, 271, 23, 593, 54, 182, 81, 424, 107,
	14, 306, 233, 481, 550, 616, 73, 35, 477, 574, 555, 168, 229,
	403, 581, 600, 395, 44, 603, 346, 488, 570, 19, 342, 208, 240,
	371, 448, 514, 88, 512, 267, 260, 265, 510, 296, 5, 42, 470,
	579, 444, 430, 626, 485, 432, 596, 293, 310, 92, 382, 618, 105,
	443, 146, 607, 529, 125, 268, 254, 540, 458, 291, 648, 401, 517,
	344, 644, 586, 242, 171, 31, 127, 345, 658, 277, 154, 613, 614,
}

var bigramSBoxInverse = SPNBox.SBox{
	459, 403, 464, 394, 9, 634, 397, 578, 373, 456, 242, 181, 31,
	97, 598, 18, 455, 269, 587, 620, 109, 107, 514, 591, 548, 125,
	551, 524, 64, 562, 501, 668, 425, 225, 402, 605, 148, 556, 530,
	336, 382, 182, 635, 334, 615, 6, 532, 486, 159, 490, 536, 529,
	145, 253, 593, 292, 463, 585, 452, 483, 457, 419, 27, 43, 278,
	588, 265, 550, 476, 494, 134, 469, 470, 604, 127, 273, 56, 110,
	100, 207, 14, 595, 497, 282, 54, 136, 286, 165, 627, 453, 71,
	416, 646, 62, 340, 268, 33, 445, 446, 542, 124, 359, 410, 7,
	541, 649, 508, 597, 421, 487, 15, 287, 144, 313, 208, 332, 428,
	434, 112, 324, 196, 328, 55, 212, 135, 654, 474, 669, 264, 579,
	52, 557, 274, 179, 436, 570, 366, 276, 308, 61, 315, 128, 104,
	400, 322, 338, 651, 42, 19, 151, 573, 202, 586, 172, 673, 217,
	73, 363, 509, 523, 259, 141, 569, 563, 250, 435, 367, 387, 609,
	76, 345, 667, 545, 347, 426, 267, 546, 311, 354, 63, 538, 177,
	594, 246, 200, 552, 65, 554, 473, 522, 413, 475, 30, 493, 480,
	368, 291, 11, 263, 188, 223, 310, 193, 309, 158, 526, 277, 418,
	622, 401, 245, 444, 233, 60, 398, 294, 16, 21, 237, 238, 312,
	374, 213, 119, 326, 143, 255, 342, 275, 610, 323, 178, 495, 600,
	103, 527, 88, 174, 84, 408, 623, 59, 666, 67, 458, 365, 372,
	189, 329, 83, 121, 228, 300, 477, 656, 572, 48, 317, 352, 465,
	630, 293, 271, 153, 53, 631, 20, 629, 655, 543, 344, 590, 205,
	283, 49, 230, 167, 672, 391, 215, 393, 95, 147, 353, 517, 488,
	302, 132, 184, 122, 5, 659, 525, 644, 295, 506, 633, 115, 584,
	247, 105, 272, 28, 185, 560, 515, 599, 41, 496, 479, 645, 216,
	138, 150, 423, 66, 429, 206, 118, 448, 301, 249, 44, 467, 22,
	364, 549, 558, 327, 303, 376, 468, 204, 433, 319, 320, 414, 232,
	461, 369, 74, 87, 621, 518, 663, 670, 617, 284, 137, 350, 98,
	239, 111, 507, 77, 297, 357, 244, 126, 450, 69, 305, 343, 34,
	37, 349, 531, 47, 502, 211, 25, 624, 0, 149, 346, 156, 355,
	505, 331, 499, 142, 299, 647, 547, 251, 133, 248, 236, 489, 46,
	481, 571, 194, 307, 356, 614, 516, 454, 12, 219, 406, 661, 154,
	611, 75, 377, 498, 195, 559, 339, 325, 535, 285, 187, 544, 386,
	321, 123, 567, 256, 539, 533, 227, 155, 596, 260, 335, 39, 279,
	371, 639, 220, 642, 130, 568, 210, 380, 101, 466, 581, 131, 370,
	288, 650, 638, 38, 262, 566, 625, 576, 443, 180, 440, 348, 281,
	2, 176, 577, 658, 190, 163, 407, 183, 218, 29, 460, 404, 241,
	580, 385, 636, 304, 164, 553, 24, 405, 198, 606, 1, 169, 442,
	601, 381, 396, 512, 641, 81, 160, 618, 40, 439, 472, 139, 521,
	113, 45, 26, 462, 330, 186, 57, 261, 504, 296, 438, 289, 162,
	10, 72, 388, 632, 222, 628, 341, 626, 266, 510, 662, 240, 152,
	224, 280, 491, 157, 32, 258, 503, 94, 417, 653, 85, 298, 582,
	471, 99, 358, 86, 235, 89, 399, 657, 168, 575, 201, 120, 214,
	114, 226, 129, 511, 602, 528, 484, 17, 318, 608, 441, 209, 537,
	362, 564, 79, 492, 23, 534, 92, 78, 80, 316, 351, 619, 478,
	3, 82, 607, 58, 432, 485, 4, 637, 375, 612, 93, 520, 555,
	431, 665, 146, 361, 8, 203, 171, 451, 592, 422, 197, 643, 243,
	389, 192, 613, 140, 36, 616, 378, 96, 519, 652, 252, 91, 482,
	117, 411, 674, 675, 102, 603, 50, 648, 360, 437, 234, 513, 166,
	90, 173, 640, 191, 314, 170, 290, 561, 116, 257, 583, 383, 270,
	333, 395, 392, 424, 500, 108, 51, 664, 35, 430, 390, 660, 306,
	221, 384, 231, 379, 175, 13, 412, 574, 671, 427, 161, 337, 229,
	415, 70, 540, 449, 420, 106, 409, 447, 589, 199, 565, 68, 254,
}

func init() {
	var seen [bigramSpace]bool
	for i := 0; i < bigramSpace; i++ {
		v := bigramSBox[i]
		if v >= bigramSpace || seen[v] {
			panic("textspn: bigram S-box is not a permutation")
		}
		seen[v] = true
		if bigramSBoxInverse[v] != uint16(i) {
			panic("textspn: bigram S-box tables are not inverse permutations")
		}
	}
}
