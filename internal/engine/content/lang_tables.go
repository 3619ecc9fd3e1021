package content

// Phrase substitution tables. Order matters: earlier entries run first and
// later entries can re-match text they inserted. A few keys repeat
// ("measuring progress", "continuous learning") — the repeats are kept so
// iteration order stays reproducible; the first occurrence wins because the
// phrase is already replaced when the duplicate runs.

var hindiPhrases = []phrasePair{
	{"This video focuses on", "यह वीडियो इस बारे में ध्यान देता है"},
	{"providing valuable insights", "कीमतीपूर्ण अंतर्दान दे रहे हैं"},
	{"comprehensive guide", "एक व्यापक गाइड"},
	{"In today's competitive landscape", "आज के प्रतिस्पर्धी दृश्य में"},
	{"mastering", "में महारत हासिल करना"},
	{"key strategies", "मुख्य रणाएँ"},
	{"understanding fundamentals", "मूलभाव को समझना"},
	{"practical implementation", "व्यावहारिक कार्यान्वयन"},
	{"continuous learning", "निरंतर सीखना"},
	{"quality over quantity", "गुणवत्ता पर मात्रा"},
	{"measuring progress", "प्रगति को मापना"},
	{"consistency is key", "निरंतरता मुख्य है"},
	{"advanced techniques", "उन्नत तकनीक"},
	{"automation and tools", "स्वचालन और औजार"},
	{"collaboration", "सहयोग"},
	{"common challenges", "आम समस्याएँ"},
	{"information overload", "जानकारी अधिक"},
	{"lack of consistency", "निरंतरता की कमी"},
	{"measuring progress", "प्रगति मापना"},
	{"clear metrics", "स्पष्ट मैट्रिक्स"},
	{"regular assessment", "नियमित मूल्यान"},
	{"adaptability", "अनुकूलनशीलता"},
	{"staying current", "अद्यतन रहना"},
	{"community engagement", "समुदाय भागीदारी"},
	{"diverse perspectives", "विविध दृष्टियों"},
	{"documenting journey", "यात्रा दस्तावेज करना"},
	{"helps others learn", "दूसरों को सीखने में मदद करना"},
	{"balancing depth with breadth", "गहराई और चौड़ाई को संतुलित करना"},
	{"well-rounded expertise", "सुव्यव्य विशेषज्ञता"},
	{"setting specific goals", "विशिष्ट लक्ष्य निर्धारण निर्धारित करना"},
	{"clear direction", "स्पष्ट दिशा"},
	{"motivation", "प्रेरणा"},
	{"combining theoretical knowledge", "सैद्धांतिक ज्ञान और व्यावहारिक अनुप्रयोग"},
	{"practical application", "व्यावहारिक कार्यान्वयन"},
	{"continuous learning", "निरंतर सीखना"},
	{"dedication", "समर्पण"},
	{"practice", "अभ्यास"},
	{"staying committed", "प्रतिबद्ध रहना"},
	{"open to learning", "सीखने के लिए खुला रहना"},
	{"adaptation", "अनुकूलन"},
	{"future self", "भविष्य आप"},
	{"effort you invest today", "आज आप करते प्रयास"},
	{"start now", "अभी शुरू करें"},
	{"take consistent action", "निरंतर कार्रवाई करें"},
}

var hinglishPhrases = []phrasePair{
	{"This video focuses on", "Is video mein focus hai"},
	{"providing valuable insights", "valuable insights deraha hai"},
	{"comprehensive guide", "ek comprehensive guide"},
	{"In today's competitive landscape", "Aaj ke competitive scenario mein"},
	{"mastering", "master karna"},
	{"key strategies", "key strategies"},
	{"understanding fundamentals", "fundamentals ko samjhna"},
	{"practical implementation", "practical implementation"},
	{"continuous learning", "continuous learning"},
	{"quality over quantity", "quality over quantity"},
	{"measuring progress", "progress ko measure karna"},
	{"consistency is key", "consistency zaroori hai"},
	{"advanced techniques", "advanced techniques"},
	{"automation and tools", "automation aur tools"},
	{"collaboration", "collaboration"},
	{"common challenges", "common challenges"},
	{"information overload", "information overload"},
	{"lack of consistency", "consistency ki kami"},
	{"measuring progress", "progress ko track karna"},
	{"clear metrics", "clear metrics"},
	{"regular assessment", "regular assessment"},
	{"adaptability", "adaptability"},
	{"staying current", "updated rehna"},
	{"community engagement", "community engagement"},
	{"diverse perspectives", "diverse perspectives"},
	{"documenting journey", "journey ko document karna"},
	{"helps others learn", "dusron ko seekhne mein madad karta hai"},
	{"balancing depth with breadth", "depth aur breadth ko balance karna"},
	{"well-rounded expertise", "well-rounded expertise"},
	{"setting specific goals", "specific goals set karna"},
	{"clear direction", "clear direction"},
	{"motivation", "motivation"},
	{"combining theoretical knowledge", "theoretical knowledge aur practical application"},
	{"practical application", "practical application"},
	{"continuous learning", "continuous learning"},
	{"dedication", "dedication"},
	{"practice", "practice"},
	{"staying committed", "committed rehna"},
	{"open to learning", "seekhne ke liye khula rehna"},
	{"adaptation", "adaptation"},
	{"future self", "aapke bhavishya aap"},
	{"effort you invest today", "aaj jo mehnat aap karte hai"},
	{"start now", "abhi shuru karein"},
	{"take consistent action", "consistent action lena"},
}

var spanishPhrases = []phrasePair{
	{"This video focuses on", "Este video se enfoca en"},
	{"providing valuable insights", "proporcionando perspectivas valiosas"},
	{"comprehensive guide", "guía comprensiva"},
	{"In today's competitive landscape", "En el panorama competitivo actual"},
	{"mastering", "dominar"},
	{"key strategies", "estrategias clave"},
	{"understanding fundamentals", "comprender los fundamentos"},
	{"practical implementation", "implementación práctica"},
	{"continuous learning", "aprendizaje continuo"},
	{"quality over quantity", "calidad sobre cantidad"},
	{"measuring progress", "medir el progreso"},
	{"consistency is key", "la consistencia es clave"},
	{"advanced techniques", "técnicas avanzadas"},
	{"automation and tools", "automatización y herramientas"},
	{"collaboration", "colaboración"},
	{"common challenges", "desafíos comunes"},
	{"information overload", "sobrecarga de información"},
	{"lack of consistency", "falta de consistencia"},
	{"measuring progress", "medir el progreso"},
	{"clear metrics", "métricas claras"},
	{"regular assessment", "evaluación regular"},
	{"adaptability", "adaptabilidad"},
	{"staying current", "mantenerse actualizado"},
	{"community engagement", "participación comunitaria"},
	{"diverse perspectives", "perspectivas diversas"},
	{"documenting journey", "documentar el viaje"},
	{"helps others learn", "ayuda a otros a aprender"},
	{"balancing depth with breadth", "equilibrar profundidad y amplitud"},
	{"well-rounded expertise", "experiencia integral"},
	{"setting specific goals", "establecer objetivos específicos"},
	{"clear direction", "dirección clara"},
	{"motivation", "motivación"},
	{"combining theoretical knowledge", "combinando conocimiento teórico"},
	{"practical application", "aplicación práctica"},
	{"continuous learning", "aprendizaje continuo"},
	{"dedication", "dedicación"},
	{"practice", "práctica"},
	{"staying committed", "mantenerse comprometido"},
	{"open to learning", "abierto al aprendizaje"},
	{"adaptation", "adaptación"},
	{"future self", "tu yo futuro"},
	{"effort you invest today", "el esfuerzo que inviertes hoy"},
	{"start now", "comenzar ahora"},
	{"take consistent action", "tomar acción consistente"},
}
