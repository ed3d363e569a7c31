package rest

// Banner is the top-of-form message a page shows for a failed call. Field
// level validation messages are delivered separately via FieldErrors; the
// banner tells the user what class of problem occurred so a connectivity
// failure is never presented as a form mistake.
type Banner struct {
	Kind    Kind
	Message string
}

// The storefront serves Nepali-speaking wholesale buyers.
var bannerMessages = map[Kind]string{
	KindNetwork:       "सर्भरमा जडान हुन सकेन। इन्टरनेट जाँच गर्नुहोस्।",
	KindCredentials:   "गलत इमेल वा पासवर्ड।",
	KindAuthorization: "तपाईंलाई यो कार्य गर्ने अनुमति छैन।",
	KindValidation:    "फारममा त्रुटिहरू छन्। तलका फिल्डहरू जाँच गर्नुहोस्।",
	KindRateLimited:   "धेरै प्रयासहरू भए। केही समयपछि पुनः प्रयास गर्नुहोस्।",
	KindServer:        "सर्भरमा समस्या आयो। केही समयपछि पुनः प्रयास गर्नुहोस्।",
	KindUnknown:       "केही गडबड भयो। पुनः प्रयास गर्नुहोस्।",
}

// BannerFor maps err to its user-facing banner. nil errors have no banner.
func BannerFor(err error) (Banner, bool) {
	if err == nil {
		return Banner{}, false
	}
	kind := KindOf(err)
	return Banner{Kind: kind, Message: bannerMessages[kind]}, true
}
