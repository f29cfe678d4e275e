// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package i18n

// catalog is built once at package init and never written afterwards.
var catalog = map[string]Text{
	"nav_home":                          {En: "Home", Hi: "होम"},
	"nav_about":                         {En: "About Rishi", Hi: "परिचय"},
	"nav_initiatives":                   {En: "Initiatives", Hi: "कार्य"},
	"nav_gallery":                       {En: "Gallery", Hi: "गैलरी"},
	"nav_news":                          {En: "News", Hi: "समाचार"},
	"nav_events":                        {En: "Events", Hi: "कार्यक्रम"},
	"nav_contact":                       {En: "Contact", Hi: "संपर्क"},
	"hero_name":                         {En: "Rishi Mishra", Hi: "ऋषि मिश्रा"},
	"hero_titles":                       {En: "Advocate | Social Worker | Founder – Sonchiraiya NGO", Hi: "अधिवक्ता | सामाजिक कार्यकर्ता | संस्थापक - सोनचिरैया एनजीओ"},
	"hero_tagline":                      {En: "Dedicated to the progress of Sarojini Nagar and Lucknow through justice, service, and empowerment.", Hi: "न्याय, सेवा और सशक्तिकरण के माध्यम से सरोजिनी नगर और लखनऊ की प्रगति के लिए समर्पित।"},
	"hero_cta_support":                  {En: "Join & Support", Hi: "जुड़ें और समर्थन करें"},
	"hero_cta_about":                    {En: "Know More", Hi: "अधिक जानें"},
	"hero_cta_contact":                  {En: "Contact Us", Hi: "संपर्क करें"},
	"learn_more":                        {En: "Learn More", Hi: "और जानें"},
	"submit":                            {En: "Submit", Hi: "जमा करें"},
	"about_section_title":               {En: "About Rishi Mishra", Hi: "ऋषि मिश्रा के बारे में"},
	"initiatives_section_title":         {En: "Work & Initiatives", Hi: "कार्य और पहल"},
	"gallery_section_title":             {En: "Gallery", Hi: "गैलरी"},
	"news_section_title":                {En: "News & Updates", Hi: "समाचार और अपडेट"},
	"contact_section_title":             {En: "Contact & Connect", Hi: "संपर्क करें और जुड़ें"},
	"home_about_title":                  {En: "A Commitment to People-First Governance", Hi: "जन-प्रथम शासन की प्रतिबद्धता"},
	"home_about_desc":                   {En: "With a background in law and a heart for social service, Rishi Mishra has been a steadfast voice for the people of Sarojini Nagar & Lucknow. His work spans legal advocacy, grassroots social initiatives, and championing the rights of farmers.", Hi: "कानून में पृष्ठभूमि और समाज सेवा के लिए एक दिल के साथ, ऋषि मिश्रा सरोजिनी नगर और लखनऊ के लोगों के लिए एक दृढ़ आवाज रहे हैं। उनके काम में कानूनी वकालत, जमीनी स्तर पर सामाजिक पहल और किसानों के अधिकारों की हिमायत शामिल है।"},
	"home_initiatives_title":            {En: "Driving Change Through Action", Hi: "कार्रवाई के माध्यम से परिवर्तन लाना"},
	"home_initiatives_desc":             {En: "Focused initiatives in key areas to uplift the community and build a brighter future for Sarojini Nagar.", Hi: "समुदाय के उत्थान और सरोजिनी नगर के लिए एक उज्जवल भविष्य के निर्माण के लिए प्रमुख क्षेत्रों में केंद्रित पहल।"},
	"home_initiatives_ngo_title":        {En: "Sonchiraiya NGO", Hi: "सोनचिरैया एनजीओ"},
	"home_initiatives_ngo_desc":         {En: "Empowering women and children through education and skill development programs.", Hi: "शिक्षा और कौशल विकास कार्यक्रमों के माध्यम से महिलाओं और बच्चों को सशक्त बनाना।"},
	"home_initiatives_kisan_title":      {En: "Kisan Movement (BKU)", Hi: "किसान आंदोलन (बीकेयू)"},
	"home_initiatives_kisan_desc":       {En: "Actively fighting for farmers' rights and fair agricultural policies.", Hi: "किसानों के अधिकारों और निष्पक्ष कृषि नीतियों के लिए सक्रिय रूप से लड़ना।"},
	"home_initiatives_youth_title":      {En: "Youth & Education", Hi: "युवा और शिक्षा"},
	"home_initiatives_youth_desc":       {En: "Creating opportunities for the youth through career counseling and educational support.", Hi: "कैरियर परामर्श और शैक्षिक सहायता के माध्यम से युवाओं के लिए अवसर पैदा करना।"},
	"home_initiatives_cta":              {En: "Explore All Initiatives", Hi: "सभी पहल देखें"},
	"home_gallery_title":                {En: "Gallery", Hi: "गैलरी"},
	"home_gallery_desc":                 {En: "Glimpses from public meetings, events, and interactions.", Hi: "जनसभाओं, कार्यक्रमों और बातचीत की झलकियाँ।"},
	"home_gallery_cta":                  {En: "View Full Gallery", Hi: "पूरी गैलरी देखें"},
	"home_news_cta":                     {En: "View All News", Hi: "सभी समाचार देखें"},
	"about_bio_title":                   {En: "My Journey", Hi: "मेरी यात्रा"},
	"about_bio_p1":                      {En: "Born and raised in the heart of Uttar Pradesh, my connection to the soil and people of Lucknow is profound. From my early days, I was drawn to the principles of fairness and justice, which led me to pursue a career in law.", Hi: "उत्तर प्रदेश के हृदय में जन्मे और पले-बढ़े, लखनऊ की मिट्टी और लोगों से मेरा गहरा नाता है। अपने शुरुआती दिनों से ही, मैं निष्पक्षता और न्याय के सिद्धांतों की ओर आकर्षित था, जिसने मुझे कानून में अपना करियर बनाने के लिए प्रेरित किया।"},
	"about_bio_p2":                      {En: "As an advocate, I've witnessed firsthand the challenges faced by ordinary citizens. This experience ignited my passion for social work and led to the founding of Sonchiraiya NGO, an organization dedicated to uplifting the most vulnerable in our society.", Hi: "एक अधिवक्ता के रूप में, मैंने आम नागरिकों के सामने आने वाली चुनौतियों को प्रत्यक्ष रूप से देखा है। इस अनुभव ने समाज सेवा के प्रति मेरे जुनून को प्रज्वलित किया और सोनचिरैया एनजीओ की स्थापना का मार्ग प्रशस्त किया, जो हमारे समाज के सबसे कमजोर लोगों के उत्थान के लिए समर्पित एक संगठन है।"},
	"about_vision_title":                {En: "Vision for Sarojini Nagar", Hi: "सरोजिनी नगर के लिए विजन"},
	"about_vision_desc":                 {En: "My vision is for a Sarojini Nagar that is a model of development—where every citizen has access to quality education, healthcare, and employment opportunities. A constituency where farmers are prosperous, youth are empowered, and infrastructure is world-class.", Hi: "मेरा दृष्टिकोण एक ऐसे सरोजिनी नगर का है जो विकास का एक मॉडल हो - जहाँ हर नागरिक को गुणवत्तापूर्ण शिक्षा, स्वास्थ्य सेवा और रोजगार के अवसर उपलब्ध हों। एक ऐसा निर्वाचन क्षेत्र जहाँ किसान समृद्ध हों, युवा सशक्त हों, और बुनियादी ढाँचा विश्व स्तरीय हो।"},
	"about_advocate_title":              {En: "Career as an Advocate", Hi: "एक अधिवक्ता के रूप में करियर"},
	"about_advocate_desc":               {En: "Practicing law has been about more than a profession; it's a platform to fight for the rights of the voiceless and ensure justice is accessible to all, not just a privileged few.", Hi: "कानून का अभ्यास एक पेशे से कहीं बढ़कर रहा है; यह बेजुबानों के अधिकारों के लिए लड़ने और यह सुनिश्चित करने का एक मंच है कि न्याय केवल कुछ विशेषाधिकार प्राप्त लोगों तक ही नहीं, बल्कि सभी तक पहुंचे।"},
	"about_movement_title":              {En: "Role in Farmers' Movement", Hi: "किसान आंदोलन में भूमिका"},
	"about_movement_desc":               {En: "Standing shoulder-to-shoulder with our annadatas, I have actively participated in the BKU movement to demand fair prices, policy reforms, and dignity for farmers.", Hi: "हमारे अन्नदाताओं के साथ कंधे से कंधा मिलाकर, मैंने किसानों के लिए उचित मूल्य, नीतिगत सुधार और सम्मान की मांग के लिए बीकेयू आंदोलन में सक्रिय रूप से भाग लिया है।"},
	"initiatives_page_title":            {En: "Our Core Initiatives", Hi: "हमारी मुख्य पहलें"},
	"initiatives_page_desc":             {En: "Targeted programs designed to address the most pressing needs of our community.", Hi: "हमारे समुदाय की सबसे गंभीर जरूरतों को पूरा करने के लिए डिज़ाइन किए गए लक्षित कार्यक्रम।"},
	"initiatives_tab_ngo":               {En: "Sonchiraiya NGO", Hi: "सोनचिरैया एनजीओ"},
	"initiatives_tab_kisan":             {En: "Kisan Issues", Hi: "किसान मुद्दे"},
	"initiatives_tab_welfare":           {En: "Public Welfare", Hi: "लोक कल्याण"},
	"initiatives_tab_youth":             {En: "Youth & Education", Hi: "युवा और शिक्षा"},
	"initiatives_welfare_content_title": {En: "Public Welfare Programs", Hi: "लोक कल्याण कार्यक्रम"},
	"initiatives_welfare_desc":          {En: "Launching and supporting programs like clean water initiatives, sanitation drives, and providing aid during natural calamities to ensure community well-being.", Hi: "स्वच्छ जल पहल, स्वच्छता अभियान जैसे कार्यक्रमों को शुरू करना और उनका समर्थन करना, और सामुदायिक कल्याण सुनिश्चित करने के लिए प्राकृतिक आपदाओं के दौरान सहायता प्रदान करना।"},
	"gallery_page_title":                {En: "Gallery", Hi: "गैलरी"},
	"gallery_page_desc":                 {En: "A collection of moments from our journey of service and activism.", Hi: "हमारी सेवा और सक्रियता की यात्रा के क्षणों का एक संग्रह।"},
	"gallery_tab_photos":                {En: "Photos", Hi: "तस्वीरें"},
	"gallery_tab_videos":                {En: "Videos", Hi: "वीडियो"},
	"news_page_title":                   {En: "Latest News & Updates", Hi: "नवीनतम समाचार और अपडेट"},
	"news_page_desc":                    {En: "Stay informed about important announcements, press releases, and public notices.", Hi: "महत्वपूर्ण घोषणाओं, प्रेस विज्ञप्तियों और सार्वजनिक सूचनाओं के बारे में सूचित रहें।"},
	"read_article":                      {En: "Read Article", Hi: "लेख पढ़ें"},
	"contact_page_title":                {En: "Get in Touch", Hi: "संपर्क में रहें"},
	"contact_page_desc":                 {En: "Your voice matters. Whether you have a suggestion, a grievance, or want to join our cause, we are here to listen.", Hi: "आपकी आवाज मायने रखती है। चाहे आपके पास कोई सुझाव हो, कोई शिकायत हो, या आप हमारे उद्देश्य में शामिल होना चाहते हों, हम सुनने के लिए यहां हैं।"},
	"contact_form_name":                 {En: "Full Name", Hi: "पूरा नाम"},
	"contact_form_email":                {En: "Email Address", Hi: "ईमेल पता"},
	"contact_form_phone":                {En: "Phone Number (Optional)", Hi: "फोन नंबर (वैकल्पिक)"},
	"contact_form_message":              {En: "Your Message", Hi: "आपका सन्देश"},
	"contact_info_title":                {En: "Direct Contact", Hi: "सीधा संपर्क"},
	"contact_social_title":              {En: "Connect on Social Media", Hi: "सोशल मीडिया पर जुड़ें"},
	"contact_map_title":                 {En: "Our Area of Focus", Hi: "हमारे कार्य का क्षेत्र"},
	"contact_form_success":              {En: "Thank you for your message!", Hi: "आपके संदेश के लिए धन्यवाद!"},
	"contact_form_error":                {En: "Something went wrong. Please try again.", Hi: "कुछ गलत हो गया। कृपया पुन: प्रयास करें।"},
	"testimonials_section_title":        {En: "Voice of the People", Hi: "जनता की आवाज"},
	"testimonials_section_desc":         {En: "Hear from the residents of Sarojini Nagar and Lucknow about the impact of our work.", Hi: "हमारे काम के प्रभाव के बारे में सरोजिनी नगर और लखनऊ के निवासियों से सुनें।"},
	"testimonial_quote_1":               {En: "Rishi Mishra's dedication to our community is unmatched. His legal aid camps have helped hundreds of families who had nowhere else to turn. He is a true public servant.", Hi: "हमारे समुदाय के प्रति ऋषि मिश्रा का समर्पण अद्वितीय है। उनके कानूनी सहायता शिविरों ने सैकड़ों परिवारों की मदद की है जिनके पास कोई और सहारा नहीं था। वह एक सच्चे जनसेवक हैं।"},
	"testimonial_author_1":              {En: "Asha Sharma", Hi: "आशा शर्मा"},
	"testimonial_role_1":                {En: "Resident, Sarojini Nagar", Hi: "निवासी, सरोजिनी नगर"},
	"testimonial_quote_2":               {En: "As a farmer, I've seen Rishi stand with us, fighting for fair prices and our rights. He isn't just a leader; he's one of us. His work with the BKU has been instrumental.", Hi: "एक किसान के रूप में, मैंने ऋषि को हमारे साथ खड़े होकर, उचित कीमतों और हमारे अधिकारों के लिए लड़ते देखा है। वह सिर्फ एक नेता नहीं हैं; वह हम में से एक हैं। बीकेयू के साथ उनका काम महत्वपूर्ण रहा है।"},
	"testimonial_author_2":              {En: "Rajendra Kumar", Hi: "राजेंद्र कुमार"},
	"testimonial_role_2":                {En: "Farmer & BKU Member", Hi: "किसान और बीकेयू सदस्य"},
	"testimonial_quote_3":               {En: "The 'Back to School' drive by Sonchiraiya NGO, under Rishi's guidance, has given my children a chance at a real future. We are incredibly grateful for his vision for youth and education.", Hi: "ऋषि के मार्गदर्शन में सोनचिरैया एनजीओ द्वारा चलाए गए 'बैक टू स्कूल' अभियान ने मेरे बच्चों को एक वास्तविक भविष्य का मौका दिया है। हम युवाओं और शिक्षा के लिए उनके दृष्टिकोण के लिए अविश्वसनीय रूप से आभारी हैं।"},
	"testimonial_author_3":              {En: "Sunita Devi", Hi: "सुनीता देवी"},
	"testimonial_role_3":                {En: "Parent, Lucknow", Hi: "अभिभावक, लखनऊ"},
	"events_section_title":              {En: "Upcoming Events", Hi: "आगामी कार्यक्रम"},
	"events_section_desc":               {En: "Join us at our upcoming events to connect with the community and support our initiatives.", Hi: "समुदाय से जुड़ने और हमारी पहलों का समर्थन करने के लिए हमारे आगामी कार्यक्रमों में शामिल हों।"},
	"view_details":                      {En: "View Details", Hi: "विवरण देखें"},
	"event_1_title":                     {En: "Free Health Check-up Camp", Hi: "निःशुल्क स्वास्थ्य जांच शिविर"},
	"event_1_desc":                      {En: "A free health check-up camp for all residents of Sarojini Nagar, organized by Sonchiraiya NGO.", Hi: "सोनचिरैया एनजीओ द्वारा आयोजित, सरोजिनी नगर के सभी निवासियों के लिए एक निःशुल्क स्वास्थ्य जांच शिविर।"},
	"event_1_location":                  {En: "Community Hall, Sector D", Hi: "सामुदायिक भवन, सेक्टर डी"},
	"event_2_title":                     {En: "Youth Career Guidance Seminar", Hi: "युवा कैरियर मार्गदर्शन सेमिनार"},
	"event_2_desc":                      {En: "A seminar to guide students on various career paths and opportunities after school.", Hi: "स्कूल के बाद विभिन्न कैरियर पथों और अवसरों पर छात्रों का मार्गदर्शन करने के लिए एक सेमिनार।"},
	"event_2_location":                  {En: "Public Library, Lucknow", Hi: "पब्लिक लाइब्रेरी, लखनऊ"},
	"event_3_title":                     {En: "Kisan Chaupal with BKU", Hi: "बीकेयू के साथ किसान चौपाल"},
	"event_3_desc":                      {En: "An open discussion with local farmers to address their concerns and discuss future strategies.", Hi: "स्थानीय किसानों के साथ उनकी चिंताओं को दूर करने और भविष्य की रणनीतियों पर चर्चा करने के लिए एक खुली चर्चा।"},
	"event_3_location":                  {En: "Village Community Center", Hi: "ग्राम सामुदायिक केंद्र"},
	"footer_tagline":                    {En: "An unwavering commitment to serving the people of Sarojini Nagar & Lucknow.", Hi: "सरोजिनी नगर और लखनऊ के लोगों की सेवा करने की एक अटूट प्रतिबद्धता।"},
	"footer_quick_links":                {En: "Quick Links", Hi: "त्वरित लिंक्स"},
	"footer_contact":                    {En: "Contact Info", Hi: "संपर्क जानकारी"},
	"footer_connect":                    {En: "Connect With Us", Hi: "हमसे जुड़ें"},
	"footer_copyright":                  {En: "All Rights Reserved. Rishi Mishra.", Hi: "सर्वाधिकार सुरक्षित। ऋषि मिश्रा।"},
	"footer_disclaimer":                 {En: "This is a personal website for informational purposes.", Hi: "यह सूचनात्मक उद्देश्यों के लिए एक व्यक्तिगत वेबसाइट है।"},
	"nav_admin":                         {En: "Admin", Hi: "प्रशासन"},
	"lang_toggle":                       {En: "हिन्दी", Hi: "English"},
	"search_placeholder":                {En: "Search…", Hi: "खोजें…"},
	"search_button":                     {En: "Search", Hi: "खोजें"},
	"filter_all":                        {En: "All", Hi: "सभी"},
	"no_results":                        {En: "Nothing matches your search.", Hi: "आपकी खोज से कुछ भी मेल नहीं खाता।"},
	"empty_section":                     {En: "Nothing to show yet.", Hi: "अभी दिखाने के लिए कुछ नहीं है।"},
	"news_more_in":                      {En: "More in %s", Hi: "%s में और"},
	"news_back":                         {En: "Back to News", Hi: "समाचार पर वापस जाएं"},
	"events_page_title":                 {En: "Events", Hi: "कार्यक्रम"},
	"events_page_desc":                  {En: "Public meetings, camps and programmes across Sarojini Nagar and Lucknow.", Hi: "सरोजिनी नगर और लखनऊ में जनसभाएं, शिविर और कार्यक्रम।"},
	"events_back":                       {En: "Back to Events", Hi: "कार्यक्रमों पर वापस जाएं"},
	"events_date":                       {En: "Date", Hi: "तारीख"},
	"events_location":                   {En: "Location", Hi: "स्थान"},
	"not_found_title":                   {En: "Page not found", Hi: "पृष्ठ नहीं मिला"},
	"not_found_desc":                    {En: "The page you are looking for does not exist or has been removed.", Hi: "आप जिस पृष्ठ को खोज रहे हैं वह मौजूद नहीं है या हटा दिया गया है।"},
	"contact_err_name":                  {En: "Name must be at least 2 characters.", Hi: "नाम कम से कम 2 अक्षरों का होना चाहिए।"},
	"contact_err_email":                 {En: "Please enter a valid email.", Hi: "कृपया एक मान्य ईमेल दर्ज करें।"},
	"contact_err_message":               {En: "Message must be at least 10 characters.", Hi: "सन्देश कम से कम 10 अक्षरों का होना चाहिए।"},
	"load_error":                        {En: "This content could not be loaded right now.", Hi: "यह सामग्री अभी लोड नहीं हो सकी।"},
}
